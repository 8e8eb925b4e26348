// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		milliseconds int
		want         string
	}{
		{170000, "2:50"},
		{65000, "1:05"},
		{900, "0:00"},
		{3600000, "60:00"},
		{0, "0:00"},
		{-1, ""},
	}
	for _, test := range tests {
		got := formatDuration(test.milliseconds)
		if got != test.want {
			t.Errorf("formatDuration(%d) = %q, want %q", test.milliseconds, got, test.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{512, "512 B"},
		{2500, "2.5 kB"},
		{4100000, "4.1 MB"},
		{1500000000, "1.5 GB"},
		{0, "0 B"},
		{-1, ""},
	}
	for _, test := range tests {
		got := formatSize(test.bytes)
		if got != test.want {
			t.Errorf("formatSize(%d) = %q, want %q", test.bytes, got, test.want)
		}
	}
}

func TestTrackLabel(t *testing.T) {
	tests := []struct {
		trackNumber int
		want        string
	}{
		{1, "  1 "},
		{12, " 12 "},
		{101, "101 "},
		{-1, "    "},
	}
	for _, test := range tests {
		got := trackLabel(test.trackNumber)
		if got != test.want {
			t.Errorf("trackLabel(%d) = %q, want %q", test.trackNumber, got, test.want)
		}
	}
}

func TestFitColumn(t *testing.T) {
	// Short text passes through unchanged; the column style pads it.
	if got := fitColumn("Paranoid", 20); got != "Paranoid" {
		t.Errorf("short text should pass through, got %q", got)
	}

	// Long text truncates with an ellipsis and leaves a gap column.
	got := fitColumn("A Saucerful of Secrets", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated text should end with an ellipsis, got %q", got)
	}
	if lipgloss.Width(got) > 9 {
		t.Errorf("fitted text should leave a gap, width %d for column 10", lipgloss.Width(got))
	}

	// Degenerate column widths render nothing.
	if got := fitColumn("anything", 1); got != "" {
		t.Errorf("width 1 should render empty, got %q", got)
	}
}

func TestRenderRowWidth(t *testing.T) {
	renderer := NewListRenderer(DefaultTheme, 80)
	item := testCatalog()[0]

	for _, selected := range []bool{false, true} {
		row := renderer.RenderRow(item, selected)
		if strings.Contains(row, "\n") {
			t.Fatalf("row should be a single line (selected=%v)", selected)
		}
		if lipgloss.Width(row) != 80 {
			t.Errorf("row width = %d, want 80 (selected=%v)", lipgloss.Width(row), selected)
		}
	}
}

func TestRenderRowContainsColumns(t *testing.T) {
	renderer := NewListRenderer(DefaultTheme, 80)
	row := renderer.RenderRow(testCatalog()[0], false)

	for _, want := range []string{"Paranoid", "Black Sabbath", "2:50", "mp3"} {
		if !strings.Contains(row, want) {
			t.Errorf("row should contain %q: %q", want, row)
		}
	}
}

func TestRenderRowTruncatesLongTitle(t *testing.T) {
	renderer := NewListRenderer(DefaultTheme, 60)
	item := testCatalog()[0]
	item.Title = strings.Repeat("An Extremely Long Title ", 5)

	row := renderer.RenderRow(item, false)
	if lipgloss.Width(row) != 60 {
		t.Errorf("row width = %d, want 60", lipgloss.Width(row))
	}
	if !strings.Contains(row, "…") {
		t.Error("long title should be truncated with an ellipsis")
	}
}

func TestRenderRowSparseTrack(t *testing.T) {
	renderer := NewListRenderer(DefaultTheme, 80)
	row := renderer.RenderRow(testCatalog()[3], false)

	if lipgloss.Width(row) != 80 {
		t.Errorf("row width = %d, want 80", lipgloss.Width(row))
	}
	if !strings.Contains(row, "untagged recording") {
		t.Errorf("row should contain the title: %q", row)
	}
	// An absent duration renders as blank space, never "0:00" or a
	// placeholder.
	if strings.Contains(row, ":") {
		t.Errorf("sparse row should render the absent duration as blank: %q", row)
	}
}
