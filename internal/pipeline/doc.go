// Package pipeline runs the add-on generator as an ordered list of stages:
// probe the installed Local variants, enumerate existing add-ons, negotiate a
// name, fetch and unpack the boilerplate, then link and enable the result.
// Stages never re-enter; the first fatal error ends the run.
package pipeline
