// Package cmd implements the subcommands of the launch CLI.
package cmd
