// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/crateworks/daapc/cmd/daapc/cli"
)

func infoCommand() *cli.Command {
	var connection serverFlags

	return &cli.Command{
		Name:    "info",
		Summary: "Show the server's name and protocol versions",
		Description: `Query the server's advertised name and protocol versions.

This endpoint does not require a session, so it works against
password-protected servers without credentials.`,
		Usage: "daapc info [flags]",
		Examples: []cli.Example{
			{
				Description: "Check a server before configuring it",
				Command:     "daapc info --server 10.0.0.5:3689",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)
			connection.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			cfg, err := connection.load()
			if err != nil {
				return err
			}
			client, err := newClient(cfg, logger)
			if err != nil {
				return err
			}

			info, err := client.ServerInfo(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Server:\t%s\n", info.Name)
			fmt.Fprintf(tw, "Address:\t%s\n", cfg.Server)
			fmt.Fprintf(tw, "DMAP version:\t%s\n", info.DMAPVersion)
			fmt.Fprintf(tw, "DAAP version:\t%s\n", info.DAAPVersion)
			return tw.Flush()
		},
	}
}
