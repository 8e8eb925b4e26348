// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the catalog browser. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Format badge colors, keyed by codec family. Lossless formats
	// get a distinct color so they stand out in a mixed library.
	FormatLossy    lipgloss.Color
	FormatLossless lipgloss.Color
}

// FormatColor returns the badge color for an audio format string.
// Unknown and absent formats render as faint text.
func (theme Theme) FormatColor(format string) lipgloss.Color {
	switch format {
	case "flac", "alac", "wav", "aif", "aiff":
		return theme.FormatLossless
	case "mp3", "m4a", "m4p", "aac", "ogg":
		return theme.FormatLossy
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FormatLossy:    lipgloss.Color("75"),  // blue
	FormatLossless: lipgloss.Color("114"), // green
}

// LightTheme adapts the palette for light terminal backgrounds: dark
// text, a light selection band, and deeper accent colors that keep
// contrast against white.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("249"),
	HelpText:         lipgloss.Color("246"),

	FormatLossy:    lipgloss.Color("25"), // deep blue
	FormatLossless: lipgloss.Color("28"), // deep green
}

// DetectTheme queries the terminal background color and returns the
// matching palette. Falls back to DefaultTheme when the terminal does
// not answer (pipes, dumb terminals).
func DetectTheme() Theme {
	if termenv.NewOutput(os.Stdout).HasDarkBackground() {
		return DefaultTheme
	}
	return LightTheme
}
