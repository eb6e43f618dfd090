// hexgen - A synthetic hexagon image dataset generator
//
// hexgen draws randomly placed, randomly coloured hexagons on contrasting
// backgrounds and writes them out as a dataset labelled by shape count.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/hexgen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
