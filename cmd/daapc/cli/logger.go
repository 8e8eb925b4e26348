// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for a command run. When
// stderr is a terminal, it uses slog.TextHandler for human-readable
// output; when stderr is piped or redirected (scripts, CI), it uses
// slog.JSONHandler for machine-parseable output. verbose lowers the
// level to Debug, which includes per-request transport logging.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
