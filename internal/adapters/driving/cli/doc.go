// Package cli is the command-line driving adapter.
//
// The root command runs one sampling pass against the directory and prints
// the result; subcommands manage persisted settings and report the version.
package cli
