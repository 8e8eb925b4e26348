// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crateworks/daapc/daap"
)

// testCatalog returns a small catalog with varied metadata plus one
// sparse entry where every optional field carries its absent value.
func testCatalog() []daap.MediaItem {
	return []daap.MediaItem{
		{
			ID:          "31-100",
			URI:         "http://127.0.0.1:3689/databases/1/items/100.mp3?session-id=31",
			Title:       "Paranoid",
			Album:       "Paranoid",
			Artist:      "Black Sabbath",
			Genre:       "Metal",
			Format:      "mp3",
			TrackNumber: 2,
			Duration:    170000,
			Size:        4100000,
			Bitrate:     192,
			Year:        1970,
		},
		{
			ID:          "31-101",
			URI:         "http://127.0.0.1:3689/databases/1/items/101.flac?session-id=31",
			Title:       "Money",
			Album:       "The Dark Side of the Moon",
			Artist:      "Pink Floyd",
			Genre:       "Progressive Rock",
			Format:      "flac",
			TrackNumber: 6,
			Duration:    382000,
			Size:        41000000,
			Bitrate:     1411,
			Year:        1973,
		},
		{
			ID:          "31-102",
			URI:         "http://127.0.0.1:3689/databases/1/items/102.m4a?session-id=31",
			Title:       "So What",
			Album:       "Kind of Blue",
			Artist:      "Miles Davis",
			Genre:       "Jazz",
			Format:      "m4a",
			TrackNumber: 1,
			Duration:    562000,
			Size:        9200000,
			Bitrate:     256,
			Year:        1959,
		},
		{
			ID:          "31-103",
			URI:         "http://127.0.0.1:3689/databases/1/items/103?session-id=31",
			Title:       "untagged recording",
			TrackNumber: -1,
			Duration:    -1,
			Size:        -1,
			Bitrate:     -1,
			Year:        -1,
		},
	}
}

// bigCatalog returns a catalog with count generated tracks for
// scrolling tests.
func bigCatalog(count int) []daap.MediaItem {
	items := make([]daap.MediaItem, 0, count)
	for index := range count {
		items = append(items, daap.MediaItem{
			ID:          fmt.Sprintf("31-%d", 200+index),
			Title:       fmt.Sprintf("Track %d", index+1),
			Artist:      "Generated",
			Album:       "Scrolling",
			Format:      "mp3",
			TrackNumber: index + 1,
			Duration:    180000,
			Size:        4000000,
			Bitrate:     192,
			Year:        2001,
		})
	}
	return items
}

func press(t *testing.T, model Model, message tea.KeyMsg) Model {
	t.Helper()
	updated, _ := model.Update(message)
	return updated.(Model)
}

func pressRune(t *testing.T, model Model, character rune) Model {
	t.Helper()
	return press(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
}

// resize delivers a WindowSizeMsg so the model renders real content
// instead of the loading placeholder.
func resize(t *testing.T, model Model, width, height int) Model {
	t.Helper()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	model := NewModel(testCatalog())

	if len(model.visible) != 4 {
		t.Fatalf("expected 4 visible tracks, got %d", len(model.visible))
	}
	if model.cursor != 0 {
		t.Errorf("initial cursor should be 0, got %d", model.cursor)
	}

	selected, ok := model.Selected()
	if !ok {
		t.Fatal("Selected should succeed on a non-empty catalog")
	}
	if selected.Title != "Paranoid" {
		t.Errorf("initial selection should be the first track, got %q", selected.Title)
	}
}

func TestModelNavigation(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, 'j')
	model = pressRune(t, model, 'j')
	if model.cursor != 2 {
		t.Errorf("cursor after jj should be 2, got %d", model.cursor)
	}

	model = pressRune(t, model, 'k')
	if model.cursor != 1 {
		t.Errorf("cursor after k should be 1, got %d", model.cursor)
	}

	model = pressRune(t, model, 'G')
	if model.cursor != 3 {
		t.Errorf("cursor after G should be on the last track, got %d", model.cursor)
	}

	// Down past the end stays on the last track.
	model = pressRune(t, model, 'j')
	if model.cursor != 3 {
		t.Errorf("cursor should stay at the end, got %d", model.cursor)
	}

	model = pressRune(t, model, 'g')
	if model.cursor != 0 {
		t.Errorf("cursor after g should be 0, got %d", model.cursor)
	}

	// Up past the start stays on the first track.
	model = pressRune(t, model, 'k')
	if model.cursor != 0 {
		t.Errorf("cursor should stay at the start, got %d", model.cursor)
	}
}

func TestModelPaging(t *testing.T) {
	// Height 10 leaves 6 content rows after the four chrome lines.
	model := resize(t, NewModel(bigCatalog(30)), 80, 10)

	model = press(t, model, tea.KeyMsg{Type: tea.KeyCtrlD})
	if model.cursor != 6 {
		t.Errorf("cursor after page down should be 6, got %d", model.cursor)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyCtrlU})
	if model.cursor != 0 {
		t.Errorf("cursor after page up should be 0, got %d", model.cursor)
	}

	// Page up at the top clamps to the first track.
	model = press(t, model, tea.KeyMsg{Type: tea.KeyCtrlU})
	if model.cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", model.cursor)
	}
}

func TestModelScrollFollowsCursor(t *testing.T) {
	model := resize(t, NewModel(bigCatalog(30)), 80, 10)

	model = pressRune(t, model, 'G')
	if model.cursor != 29 {
		t.Fatalf("cursor after G should be 29, got %d", model.cursor)
	}
	if model.scrollOffset != 24 {
		t.Errorf("scroll offset should be 24 (last window), got %d", model.scrollOffset)
	}

	model = pressRune(t, model, 'g')
	if model.scrollOffset != 0 {
		t.Errorf("scroll offset after g should be 0, got %d", model.scrollOffset)
	}
}

func TestModelResizeClampsScroll(t *testing.T) {
	model := resize(t, NewModel(bigCatalog(30)), 80, 10)
	model = pressRune(t, model, 'G')

	// Growing the window so the whole list fits must pull the scroll
	// offset back to the top.
	model = resize(t, model, 80, 40)
	if model.scrollOffset != 0 {
		t.Errorf("scroll offset after growing the window should be 0, got %d", model.scrollOffset)
	}
}

func TestModelFilterNarrows(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	if !model.filter.Active {
		t.Fatal("/ should activate the filter")
	}

	for _, character := range "sab" {
		model = pressRune(t, model, character)
	}

	if model.filter.Input != "sab" {
		t.Errorf("filter input should be %q, got %q", "sab", model.filter.Input)
	}
	if len(model.visible) != 1 {
		t.Fatalf("filter 'sab' should match 1 track, got %d", len(model.visible))
	}

	selected, ok := model.Selected()
	if !ok {
		t.Fatal("Selected should succeed with one match")
	}
	if selected.Artist != "Black Sabbath" {
		t.Errorf("filter 'sab' should select the Black Sabbath track, got %q", selected.Artist)
	}
}

func TestModelFilterEnterConfirms(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	model = pressRune(t, model, 'j')

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.filter.Active {
		t.Error("enter should deactivate the filter input")
	}
	if model.filter.Input != "j" {
		t.Errorf("enter should keep the filter text, got %q", model.filter.Input)
	}
	if len(model.visible) != 1 {
		t.Errorf("confirmed filter should stay applied, got %d tracks", len(model.visible))
	}

	// With the filter confirmed, j navigates again instead of typing.
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if len(model.visible) != 4 {
		t.Errorf("esc after confirm should clear the filter, got %d tracks", len(model.visible))
	}
}

func TestModelFilterEscClears(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	for _, character := range "jazz" {
		model = pressRune(t, model, character)
	}
	if len(model.visible) != 1 {
		t.Fatalf("filter 'jazz' should match 1 track, got %d", len(model.visible))
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.filter.Active {
		t.Error("esc should exit filter mode")
	}
	if model.filter.Input != "" {
		t.Errorf("esc should clear the filter text, got %q", model.filter.Input)
	}
	if len(model.visible) != 4 {
		t.Errorf("cleared filter should restore all tracks, got %d", len(model.visible))
	}
}

func TestModelFilterEscWhenEmptyExitsFilterMode(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.filter.Active {
		t.Error("esc with empty input should exit filter mode")
	}
	if len(model.visible) != 4 {
		t.Errorf("all tracks should stay visible, got %d", len(model.visible))
	}
}

func TestModelFilterQIsARune(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = updated.(Model)

	if cmd != nil {
		t.Error("q in filter mode should type, not quit")
	}
	if model.filter.Input != "q" {
		t.Errorf("filter input should be %q, got %q", "q", model.filter.Input)
	}

	// ctrl+c still quits from filter mode.
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c in filter mode should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce a quit command")
	}
}

func TestModelQuit(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a quit command")
	}
}

func TestModelViewShowsSelection(t *testing.T) {
	model := NewModel(testCatalog())
	model.SetServerName("Mike's Music")
	model = resize(t, model, 100, 24)

	view := model.View()
	if !strings.Contains(view, "Mike's Music") {
		t.Error("view should show the server name in the header")
	}
	if !strings.Contains(view, "4 tracks") {
		t.Error("view should show the track count")
	}
	if !strings.Contains(view, "Paranoid") {
		t.Error("view should show the selected track title")
	}
	if !strings.Contains(view, "Black Sabbath") {
		t.Error("view should show the selected track artist")
	}
	if !strings.Contains(view, "192 kbps") {
		t.Error("detail line should show the bitrate")
	}
}

func TestModelViewLoadingBeforeResize(t *testing.T) {
	model := NewModel(testCatalog())
	if model.View() != "Loading..." {
		t.Errorf("view before the first resize should be the loading placeholder, got %q", model.View())
	}
}

func TestModelViewEmptyCatalog(t *testing.T) {
	model := resize(t, NewModel(nil), 80, 24)

	if _, ok := model.Selected(); ok {
		t.Error("Selected should fail on an empty catalog")
	}
	if !strings.Contains(model.View(), "Catalog is empty.") {
		t.Error("view should show the empty state")
	}
}

func TestModelFilterNoMatches(t *testing.T) {
	model := resize(t, NewModel(testCatalog()), 80, 24)

	model = pressRune(t, model, '/')
	for _, character := range "zzz" {
		model = pressRune(t, model, character)
	}
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if len(model.visible) != 0 {
		t.Fatalf("filter 'zzz' should match nothing, got %d tracks", len(model.visible))
	}
	if _, ok := model.Selected(); ok {
		t.Error("Selected should fail when nothing matches")
	}

	view := model.View()
	if !strings.Contains(view, "no tracks match") {
		t.Error("detail line should report that nothing matches")
	}
	if !strings.Contains(view, "filter: zzz") {
		t.Error("inactive filter with text should stay visible in the chrome")
	}
}
