// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalogui provides the interactive catalog browser TUI.
// It renders a fetched media catalog as a filterable track table with
// vim-style navigation and a detail line for the selected track.
//
// This is a separate package from cmd/daapc so that the
// charmbracelet/bubbletea dependency (and its transitive closure:
// bubbles, lipgloss, termenv, cellbuf) is only linked into binaries
// that actually import it. Only the browse subcommand does.
//
// File layout:
//
//   - model.go: the bubbletea model (state, Update, View)
//   - list.go: table row rendering and column layout
//   - filter.go: substring filter over track metadata
//   - keys.go: key bindings
//   - theme.go: color palette and terminal background detection
//
// The model is pure: it owns a fixed catalog snapshot and never talks
// to the network. Callers fetch the catalog first and hand the result
// to NewModel.
package catalogui
