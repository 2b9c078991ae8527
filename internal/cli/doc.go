// Package cli builds the clipy command tree. Without a subcommand clipy opens
// the desktop window; the subcommands talk to the server headlessly and print
// to the terminal.
package cli
