// Package cli defines the Cobra command tree for the airis-extract CLI. The
// root command performs the extraction; validate, config and version are
// subcommands. Commands delegate to internal packages for the work and only
// handle flag parsing, configuration and I/O.
package cli
