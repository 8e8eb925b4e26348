// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Command daapc is a client for DAAP media servers. It logs in,
// fetches the catalog, and prints or interactively browses it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crateworks/daapc/cmd/daapc/cli"
	"github.com/crateworks/daapc/cmd/daapc/commands"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --verbose selects the logger, which exists before any command
	// parses flags, so it is stripped here instead of being declared
	// on every subcommand.
	args := make([]string, 0, len(os.Args)-1)
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" || arg == "-v" {
			verbose = true
			continue
		}
		args = append(args, arg)
	}

	logger := cli.NewLogger(verbose)
	return commands.Root().Execute(ctx, args, logger)
}
