// Package boilerplate materializes a new add-on directory from the remote
// boilerplate zip archive. It downloads the archive next to the destination,
// extracts it, removes the archive and renames the archive's top-level folder
// to the add-on name. Every failure cleans up what the failed step left
// behind before the error is returned.
package boilerplate
