// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the daapc command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crateworks/daapc/cmd/daapc/cli"
	"github.com/crateworks/daapc/lib/version"
)

// Root builds and returns the complete daapc command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "daapc",
		Description: `daapc is a client for DAAP media servers (iTunes-style music
sharing). It logs in, enumerates the server's catalog, and presents
the result as a table, JSON, or an interactive browser.

The server address and password file can be set once in a config
file (~/.config/daapc/config.yaml) and overridden per run with
flags. The global --verbose flag enables debug logging, including
one line per HTTP request.`,
		Subcommands: []*cli.Command{
			listCommand(),
			browseCommand(),
			infoCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("daapc %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "List the configured server's catalog",
				Command:     "daapc list",
			},
			{
				Description: "Browse a remote catalog interactively",
				Command:     "daapc browse --server 10.0.0.5:3689",
			},
			{
				Description: "Check a server without logging in",
				Command:     "daapc info --server 10.0.0.5:3689",
			},
		},
	}
}
