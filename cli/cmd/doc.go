// Package cmd implements the envcheck subcommands.
//
// Each subcommand is a Kong command struct with a Run method. Commands parse
// environment files with the envfile package, analyze them with the compare
// package, and render the result as styled text, JSON, or YAML.
package cmd
