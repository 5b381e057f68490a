// Package cli implements the command-line interface for envcheck.
//
// The interface is declared as a [CLI] struct parsed with
// [github.com/alecthomas/kong]. Subcommands live in the cli/cmd package.
// Logging and profiling flags are embedded groups shared by every
// subcommand, and persistent flag defaults may be stored in a JSON
// configuration file under the user configuration directory.
package cli
