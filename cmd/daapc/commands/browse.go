// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/crateworks/daapc/cmd/daapc/cli"
	"github.com/crateworks/daapc/lib/catalogui"
)

func browseCommand() *cli.Command {
	var connection serverFlags

	return &cli.Command{
		Name:    "browse",
		Summary: "Browse the catalog in an interactive terminal UI",
		Description: `Fetch the catalog and open it in a terminal browser with vim-style
navigation and a substring filter.

Keys: j/k move, Ctrl-D/Ctrl-U page, g/G jump, / filter, q quit.`,
		Usage: "daapc browse [flags]",
		Examples: []cli.Example{
			{
				Description: "Browse the configured server's catalog",
				Command:     "daapc browse",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("browse", pflag.ContinueOnError)
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

			// The share name feeds the browser header. Failure is not
			// fatal; the header falls back to a generic title.
			serverName := ""
			if info, err := client.ServerInfo(ctx); err == nil {
				serverName = info.Name
			} else {
				logger.Debug("server info unavailable", "error", err)
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

			// The browser works on a snapshot, so the session can be
			// released before it opens.
			if err := client.Logout(ctx); err != nil {
				logger.Debug("logout failed", "error", err)
			}

			model := catalogui.NewModel(items)
			model.SetTheme(catalogui.DetectTheme())
			if serverName != "" {
				model.SetServerName(serverName)
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
