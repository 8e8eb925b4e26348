// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/crateworks/daapc/cmd/daapc/cli"
	"github.com/crateworks/daapc/daap"
)

func listCommand() *cli.Command {
	var connection serverFlags
	var output string

	return &cli.Command{
		Name:    "list",
		Summary: "Fetch and print the server's catalog",
		Description: `Log in to the media server, fetch its catalog, and print one line
per track.

The first login attempt is anonymous. When the server requires a
password, daapc reads it from --password-file if set and prompts on
the terminal otherwise, then retries once with credentials.`,
		Usage: "daapc list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the configured server's catalog",
				Command:     "daapc list",
			},
			{
				Description: "List a remote catalog as JSON",
				Command:     "daapc list --server 10.0.0.5:3689 --output json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			connection.register(flagSet)
			flagSet.StringVar(&output, "output", "",
				"output format: table or json (overrides the config file)")
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
			if output != "" {
				cfg.Output = output
			}
			if cfg.Output != "table" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q (want table or json)", cfg.Output)
			}

			client, err := newClient(cfg, logger)
			if err != nil {
				return err
			}

			password, err := login(ctx, client, cfg)
			if err != nil {
				return err
			}
			if password != nil {
				defer password.Close()
			}

			items, err := client.FetchCatalog(ctx)
			if err != nil {
				return err
			}

			// Best effort: the server expires the session on its own
			// when this fails.
			if err := client.Logout(ctx); err != nil {
				logger.Debug("logout failed", "error", err)
			}

			if cfg.Output == "json" {
				return writeJSON(os.Stdout, items)
			}
			return writeTable(os.Stdout, items)
		},
	}
}

// writeTable prints the catalog as an aligned text table. Absent
// fields render as empty cells.
func writeTable(w io.Writer, items []daap.MediaItem) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tARTIST\tALBUM\tTIME\tFORMAT")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Artist, item.Album,
			formatTime(item.Duration), item.Format)
	}
	return tw.Flush()
}

// writeJSON prints the catalog as an indented JSON array. Absent
// numeric fields keep their -1 sentinel so consumers can tell "zero"
// from "not reported".
func writeJSON(w io.Writer, items []daap.MediaItem) error {
	if items == nil {
		items = []daap.MediaItem{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

// formatTime formats a millisecond duration as "m:ss".
func formatTime(milliseconds int) string {
	if milliseconds < 0 {
		return ""
	}
	totalSeconds := milliseconds / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
