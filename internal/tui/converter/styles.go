// ============================================================================
// Kurswerk - Interaktiver Währungsrechner
// ============================================================================
//
// Package:     converter
// Description: Themes and styles for the converter TUI (dark/light)
// Author:      msto63
// Created:     2026-08-12
// License:     MIT
// ============================================================================

package converter

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is an immutable color palette. Toggling swaps the whole theme and
// rebuilds the styles, so no style ever mixes colors from both palettes.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Border    lipgloss.Color
	BorderHot lipgloss.Color
	BarBg     lipgloss.Color
	BarFg     lipgloss.Color
}

// DarkTheme returns the default dark palette
func DarkTheme() Theme {
	return Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#8B5CF6"), // Violet
		Accent:    lipgloss.Color("#10B981"), // Emerald
		Text:      lipgloss.Color("#F8FAFC"), // Slate 50
		TextMuted: lipgloss.Color("#94A3B8"), // Slate 400
		Border:    lipgloss.Color("#374151"), // Dark Gray
		BorderHot: lipgloss.Color("#8B5CF6"),
		BarBg:     lipgloss.Color("#1E293B"), // Slate 800
		BarFg:     lipgloss.Color("#F8FAFC"),
	}
}

// LightTheme returns the light palette
func LightTheme() Theme {
	return Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#6D28D9"), // Violet 700
		Accent:    lipgloss.Color("#047857"), // Emerald 700
		Text:      lipgloss.Color("#1E293B"), // Slate 800
		TextMuted: lipgloss.Color("#64748B"), // Slate 500
		Border:    lipgloss.Color("#CBD5E1"), // Slate 300
		BorderHot: lipgloss.Color("#6D28D9"),
		BarBg:     lipgloss.Color("#E2E8F0"), // Slate 200
		BarFg:     lipgloss.Color("#1E293B"),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all rendered lipgloss styles for the active theme
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Panel      lipgloss.Style
	HotPanel   lipgloss.Style
	PanelTitle lipgloss.Style
	FieldLabel lipgloss.Style
	Input      lipgloss.Style
	HotInput   lipgloss.Style
	Result     lipgloss.Style
	ResultVal  lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	HelpKey    lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		HotPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderHot).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		FieldLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		HotInput: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.BorderHot).
			Padding(0, 1),

		Result: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		ResultVal: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),

		StatusBar: lipgloss.NewStyle().
			Background(t.BarBg).
			Foreground(t.BarFg).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}

// RenderKeyHint renders a keyboard shortcut hint
func (s Styles) RenderKeyHint(key, description string) string {
	return s.HelpKey.Render(key) + " " + s.Help.Render(description)
}
