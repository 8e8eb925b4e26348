// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crateworks/daapc/daap"
)

// Model is the top-level bubbletea model for the catalog browser.
type Model struct {
	theme Theme
	keys  KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// library is the full catalog snapshot; visible is the filtered
	// view the cursor moves over.
	library []daap.MediaItem
	visible []daap.MediaItem

	filter FilterModel

	cursor       int
	scrollOffset int

	// serverName is shown in the header when known.
	serverName string
}

// NewModel creates a Model over a fetched catalog snapshot.
func NewModel(items []daap.MediaItem) Model {
	return Model{
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
		library: items,
		visible: items,
	}
}

// SetTheme replaces the color palette. Call this after NewModel and
// before running the bubbletea program.
func (model *Model) SetTheme(theme Theme) {
	model.theme = theme
}

// SetServerName sets the server name shown in the header. Call this
// after NewModel and before running the bubbletea program.
func (model *Model) SetServerName(name string) {
	model.serverName = name
}

// Selected returns the track under the cursor. Returns false when the
// visible list is empty.
func (model Model) Selected() (daap.MediaItem, bool) {
	if model.cursor < 0 || model.cursor >= len(model.visible) {
		return daap.MediaItem{}, false
	}
	return model.visible[model.cursor], true
}

// Init implements tea.Model. The catalog is a fixed snapshot, so
// there is nothing to start.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Routes keyboard events to the filter
// input or the list depending on which has focus.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// When the filter is active, route all input to it first.
		if model.filter.Active {
			return model.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.FilterActivate):
			model.filter.Active = true
			// Reset to the top so results read from the beginning
			// as the user types.
			model.cursor = 0
			model.scrollOffset = 0

		case key.Matches(message, model.keys.FilterClear):
			if model.filter.Input != "" {
				model.filter.Clear()
				model.applyFilter()
			}

		default:
			model.handleListKeys(message)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()
	}
	return model, nil
}

// handleFilterKeys processes keystrokes while the filter input has
// focus. Regular characters go to the input, Esc clears, Enter
// confirms and returns focus to the list.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits, even in filter mode.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		// 'q' is a regular character in filter mode.
		model.filter.HandleRune('q')
		model.applyFilter()
		return model, nil

	case key.Matches(message, model.keys.FilterClear):
		// Esc: if there's filter text, clear it; if already empty,
		// just exit filter mode.
		if model.filter.Input != "" {
			model.filter.Clear()
			model.applyFilter()
		} else {
			model.filter.Active = false
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		// Confirm filter and return focus to the list.
		model.filter.Active = false
		return model, nil

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyFilter()
		}
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.applyFilter()
		return model, nil
	}

	return model, nil
}

// handleListKeys processes navigation keys when the list has focus.
func (model *Model) handleListKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.visible)-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.PageUp):
		target := model.cursor - model.visibleHeight()
		if target < 0 {
			target = 0
		}
		model.cursor = model.clampedIndex(target)

	case key.Matches(message, model.keys.PageDown):
		target := model.cursor + model.visibleHeight()
		if len(model.visible) > 0 && target >= len(model.visible) {
			target = len(model.visible) - 1
		}
		model.cursor = model.clampedIndex(target)

	case key.Matches(message, model.keys.Home):
		model.cursor = 0

	case key.Matches(message, model.keys.End):
		if len(model.visible) > 0 {
			model.cursor = len(model.visible) - 1
		}
	}

	model.ensureCursorVisible()
}

// applyFilter recomputes the visible list from the current filter
// text and keeps the cursor on a valid row.
func (model *Model) applyFilter() {
	model.visible = model.filter.Apply(model.library)
	model.cursor = model.clampedIndex(model.cursor)
	model.ensureCursorVisible()
}

// clampedIndex clamps a position into the valid cursor range for the
// visible list.
func (model *Model) clampedIndex(position int) int {
	if len(model.visible) == 0 {
		return 0
	}
	if position < 0 {
		return 0
	}
	if position >= len(model.visible) {
		return len(model.visible) - 1
	}
	return position
}

// visibleHeight returns the number of list rows that fit between the
// chrome: the header (or filter bar), the bottom separator, the
// detail line, and the help bar.
func (model Model) visibleHeight() int {
	return model.height - 4
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	// Clamp scrollOffset so we never scroll past the end of the list.
	// This handles filter changes that shrink the list below the old
	// offset.
	maxOffset := len(model.visible) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	// Ensure the cursor is within the visible window.
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if len(model.library) == 0 {
		return model.renderEmpty()
	}

	var sections []string

	// Top chrome line: either the header or the filter bar. The
	// filter bar replaces the header so the layout doesn't shift.
	filterView := model.filter.View(model.theme, model.width)
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderHeader())
	}

	sections = append(sections, model.renderRows())

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)

	sections = append(sections, model.renderDetail())
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderRows renders the visible window of track rows, padded with
// blank lines so the chrome below stays pinned to the bottom.
func (model Model) renderRows() string {
	renderer := NewListRenderer(model.theme, model.width)

	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.visible); index++ {
		rows = append(rows, renderer.RenderRow(model.visible[index], index == model.cursor))
	}

	emptyStyle := lipgloss.NewStyle().Width(model.width)
	for len(rows) < visible {
		rows = append(rows, emptyStyle.Render(""))
	}

	return strings.Join(rows, "\n")
}

// renderHeader renders the top line: server name on the left, track
// counts on the right, joined by a rule.
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := model.serverName
	if title == "" {
		title = "catalog"
	}

	statsText := fmt.Sprintf("%d tracks", len(model.visible))
	if len(model.visible) != len(model.library) {
		statsText = fmt.Sprintf("%d of %d tracks", len(model.visible), len(model.library))
	}

	left := separatorStyle.Render("───") + " " + titleStyle.Render(title) + " "
	leftWidth := 3 + 1 + lipgloss.Width(title) + 1

	right := " " + statsStyle.Render(statsText) + " " + separatorStyle.Render("─")
	rightWidth := 1 + lipgloss.Width(statsText) + 1 + 1

	fillCount := model.width - leftWidth - rightWidth
	if fillCount < 1 {
		fillCount = 1
	}
	fill := separatorStyle.Render(strings.Repeat("─", fillCount))

	return left + fill + right
}

// renderDetail renders the one-line metadata summary for the selected
// track below the separator.
func (model Model) renderDetail() string {
	item, ok := model.Selected()
	if !ok {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Width(model.width).
			Render(" no tracks match")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)
	metaStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	// Absent fields are skipped rather than rendered as placeholders.
	var parts []string
	if item.Artist != "" {
		parts = append(parts, item.Artist)
	}
	if item.Album != "" {
		parts = append(parts, item.Album)
	}
	if item.Year >= 0 {
		parts = append(parts, strconv.Itoa(item.Year))
	}
	if item.Genre != "" {
		parts = append(parts, item.Genre)
	}
	if duration := formatDuration(item.Duration); duration != "" {
		parts = append(parts, duration)
	}
	if item.Bitrate >= 0 {
		parts = append(parts, fmt.Sprintf("%d kbps", item.Bitrate))
	}
	if size := formatSize(item.Size); size != "" {
		parts = append(parts, size)
	}

	line := " " + titleStyle.Render(item.Title)
	if len(parts) > 0 {
		line += metaStyle.Render("  " + strings.Join(parts, " · "))
	}

	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(line)
}

// renderHelp renders the bottom help bar with key hints and position.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	help := " q quit  j/k navigate  g/G top/bottom  C-u/C-d page  / filter"
	if model.filter.Active {
		help = " type to filter  Enter confirm  Esc clear"
	}

	if len(model.visible) > model.visibleHeight() && model.visibleHeight() > 0 {
		position := ""
		switch {
		case model.scrollOffset == 0:
			position = "top"
		case model.scrollOffset+model.visibleHeight() >= len(model.visible):
			position = "bottom"
		default:
			percent := float64(model.scrollOffset) / float64(len(model.visible)-model.visibleHeight()) * 100
			position = fmt.Sprintf("%d%%", int(percent))
		}
		help += fmt.Sprintf("  [%s] %d/%d", position, model.cursor+1, len(model.visible))
	} else if len(model.visible) > 0 {
		help += fmt.Sprintf("  %d/%d", model.cursor+1, len(model.visible))
	}

	return style.Render(help)
}

// renderEmpty renders the empty state for a catalog with no tracks.
func (model Model) renderEmpty() string {
	messageStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	return lipgloss.Place(
		model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		messageStyle.Render("Catalog is empty."),
	)
}
