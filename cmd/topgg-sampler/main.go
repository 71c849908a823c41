// Package main is the entry point for the topgg-sampler CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/custodia-labs/topgg-sampler/internal/adapters/driving/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		stop()
		errPrefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
		os.Stderr.WriteString(errPrefix + " " + err.Error() + "\n")
		os.Exit(1)
	}
}
