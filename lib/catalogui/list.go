// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/crateworks/daapc/daap"
)

// Column widths for the track table. Title, artist, and album split
// the remaining space; all others are fixed.
const (
	columnWidthTrack  = 4 // right-aligned track number + space
	columnWidthTime   = 6 // right-aligned "mm:ss" duration
	columnWidthFormat = 5 // space + codec badge (e.g. " flac")
)

// ListRenderer handles the table-style rendering of catalog tracks
// within a given width.
type ListRenderer struct {
	theme Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given width.
func NewListRenderer(theme Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// columnWidths computes the flexible column widths for the current
// renderer width. The title gets half of the flexible space, the
// artist a quarter, and the album the remainder. The title column
// never drops below 10 so narrow terminals stay readable.
func (renderer ListRenderer) columnWidths() (titleWidth, artistWidth, albumWidth int) {
	flexible := renderer.width - 1 - columnWidthTrack - columnWidthTime - columnWidthFormat
	titleWidth = flexible / 2
	if titleWidth < 10 {
		titleWidth = 10
	}
	artistWidth = flexible / 4
	albumWidth = flexible - titleWidth - artistWidth
	if artistWidth < 0 {
		artistWidth = 0
	}
	if albumWidth < 0 {
		albumWidth = 0
	}
	return titleWidth, artistWidth, albumWidth
}

// RenderRow renders a single track as a formatted table row. The
// selected flag controls whether the row gets highlight styling.
//
// Row layout: indent + track number + title + artist + album + duration + format
//
//	  7 Paranoid            Black Sabbath   Paranoid        2:50  mp3
func (renderer ListRenderer) RenderRow(item daap.MediaItem, selected bool) string {
	titleWidth, artistWidth, albumWidth := renderer.columnWidths()

	track := trackLabel(item.TrackNumber)
	duration := fmt.Sprintf("%*s", columnWidthTime, formatDuration(item.Duration))
	format := fmt.Sprintf(" %-4s", item.Format)

	if selected {
		baseStyle := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)

		row := " " +
			baseStyle.Render(track) +
			baseStyle.Bold(true).Width(titleWidth).Render(fitColumn(item.Title, titleWidth)) +
			baseStyle.Width(artistWidth).Render(fitColumn(item.Artist, artistWidth)) +
			baseStyle.Width(albumWidth).Render(fitColumn(item.Album, albumWidth)) +
			baseStyle.Render(duration) +
			baseStyle.Render(format)
		return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
	}

	trackStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	titleStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	artistStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	albumStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	timeStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	formatStyle := lipgloss.NewStyle().Foreground(renderer.theme.FormatColor(item.Format))

	row := " " +
		trackStyle.Render(track) +
		titleStyle.Width(titleWidth).Render(fitColumn(item.Title, titleWidth)) +
		artistStyle.Width(artistWidth).Render(fitColumn(item.Artist, artistWidth)) +
		albumStyle.Width(albumWidth).Render(fitColumn(item.Album, albumWidth)) +
		timeStyle.Render(duration) +
		formatStyle.Render(format)

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// trackLabel formats a track number as a fixed-width column cell.
// Absent track numbers render as blank space so titles stay aligned.
func trackLabel(trackNumber int) string {
	if trackNumber < 0 {
		return "    "
	}
	return fmt.Sprintf("%3d ", trackNumber)
}

// formatDuration formats a millisecond duration as "m:ss". Absent
// durations render as empty string.
func formatDuration(milliseconds int) string {
	if milliseconds < 0 {
		return ""
	}
	totalSeconds := milliseconds / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// formatSize formats a byte count with decimal units. Absent sizes
// render as empty string.
func formatSize(bytes int) string {
	if bytes < 0 {
		return ""
	}
	switch {
	case bytes >= 1e9:
		return fmt.Sprintf("%.1f GB", float64(bytes)/1e9)
	case bytes >= 1e6:
		return fmt.Sprintf("%.1f MB", float64(bytes)/1e6)
	case bytes >= 1e3:
		return fmt.Sprintf("%.1f kB", float64(bytes)/1e3)
	}
	return fmt.Sprintf("%d B", bytes)
}

// fitColumn truncates text to fit a column, leaving at least one
// trailing space as a gap to the next column. Truncated text ends
// with an ellipsis.
func fitColumn(text string, width int) string {
	if width <= 1 {
		return ""
	}
	if lipgloss.Width(text) <= width-1 {
		return text
	}
	return truncateString(text, width-2) + "…"
}

// truncateString truncates a string to maxWidth visual characters.
// Handles multi-byte characters correctly via lipgloss width
// measurement.
func truncateString(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	// Truncate by runes until we fit.
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
