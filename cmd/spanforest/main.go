// SPDX-License-Identifier: MIT

// Command spanforest computes minimum spanning forests and connected
// components of graphs stored as TOML documents.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/spanforest/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.NewRootCommand()); err != nil {
		stop()
		os.Exit(1)
	}
}
