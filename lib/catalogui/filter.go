// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crateworks/daapc/daap"
)

// FilterModel implements substring matching across the searchable
// track fields: title, artist, album, genre, format, and year. The
// filter narrows the catalog client-side; the full snapshot stays in
// the model and reappears when the filter clears.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// Matches returns true if the track matches the current filter. An
// empty filter matches everything. Matching is case-insensitive
// substring against each searchable field.
func (filter *FilterModel) Matches(item daap.MediaItem) bool {
	if filter.Input == "" {
		return true
	}

	query := strings.ToLower(filter.Input)

	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Artist), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Album), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Genre), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Format), query) {
		return true
	}

	// Match against the release year, so "1973" finds an era.
	if item.Year >= 0 && strings.Contains(strconv.Itoa(item.Year), query) {
		return true
	}

	return false
}

// Apply filters a catalog, returning only the tracks that match the
// current filter text.
func (filter *FilterModel) Apply(items []daap.MediaItem) []daap.MediaItem {
	if filter.Input == "" {
		return items
	}

	var result []daap.MediaItem
	for _, item := range items {
		if filter.Matches(item) {
			result = append(result, item)
		}
	}
	return result
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	// Inactive but has text: show the filter as a subtle indicator.
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
