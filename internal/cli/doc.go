// Package cli defines the Cobra command tree for create-local-addon. The
// root command runs the generator; list, config and version are registered
// as subcommands from their own files. Commands only parse flags, build the
// collaborators and format output; the work happens in internal/pipeline.
package cli
