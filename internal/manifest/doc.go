// Package manifest validates the package.json of a generated add-on against
// an embedded JSON Schema describing what Local expects from an add-on
// manifest. Problems are reported as issues, never as hard failures, so a
// boilerplate that drifts from the schema still produces a usable directory.
package manifest
