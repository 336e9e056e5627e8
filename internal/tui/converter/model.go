// ============================================================================
// Kurswerk - Interaktiver Währungsrechner
// ============================================================================
//
// Package:     converter
// Description: Main Bubble Tea model for the converter TUI
// Author:      msto63
// Created:     2026-08-12
// License:     MIT
// ============================================================================

package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/kurswerk/foundation/core/log"
	"github.com/msto63/kurswerk/internal/exchange"
)

// Field indices into Model.fields
const (
	fieldBaseAmount = iota
	fieldBaseRate
	fieldQuoteAmount
	fieldQuoteRate
	fieldDirectBase
	fieldDirectQuote
	fieldCrossBase
	fieldCrossQuote
	fieldCount
)

const inputWidth = 16

// panel binds two fields to a formula and a result unit
type panel struct {
	title      string
	fieldA     int
	fieldB     int
	formula    exchange.Formula
	resultUnit string
}

// Config holds the converter configuration
type Config struct {
	BaseCurrency      string
	QuoteCurrency     string
	ReferenceCurrency string
	AmountDecimals    int
	RateDecimals      int
	Theme             string
	Logger            *log.Logger
}

// Model is the main Bubble Tea model
type Model struct {
	cfg    Config
	theme  Theme
	styles Styles
	logger *log.Logger

	fields []Field
	panels []panel
	focus  int

	width  int
	height int
	ready  bool
}

// NewModel creates the converter model from configuration
func NewModel(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithConfig(log.Config{Output: io.Discard})
	}

	base := cfg.BaseCurrency
	quote := cfg.QuoteCurrency
	ref := cfg.ReferenceCurrency

	fields := make([]Field, fieldCount)
	fields[fieldBaseAmount] = NewField(fmt.Sprintf("Betrag (%s)", base), "0", inputWidth)
	fields[fieldBaseRate] = NewField(fmt.Sprintf("Kurs (%s je %s)", base, quote), "0", inputWidth)
	fields[fieldQuoteAmount] = NewField(fmt.Sprintf("Betrag (%s)", quote), "0", inputWidth)
	fields[fieldQuoteRate] = NewField(fmt.Sprintf("Kurs (%s je %s)", base, quote), "0", inputWidth)
	fields[fieldDirectBase] = NewField(fmt.Sprintf("Betrag (%s)", base), "0", inputWidth)
	fields[fieldDirectQuote] = NewField(fmt.Sprintf("Betrag (%s)", quote), "0", inputWidth)
	fields[fieldCrossBase] = NewField(fmt.Sprintf("Kurs (%s je %s)", base, ref), "0", inputWidth)
	fields[fieldCrossQuote] = NewField(fmt.Sprintf("Kurs (%s je %s)", quote, ref), "0", inputWidth)

	panels := []panel{
		{
			title:      fmt.Sprintf("%s → %s", base, quote),
			fieldA:     fieldBaseAmount,
			fieldB:     fieldBaseRate,
			formula:    exchange.Formula{Op: exchange.OpDivide, Decimals: cfg.AmountDecimals},
			resultUnit: quote,
		},
		{
			title:      fmt.Sprintf("%s → %s", quote, base),
			fieldA:     fieldQuoteAmount,
			fieldB:     fieldQuoteRate,
			formula:    exchange.Formula{Op: exchange.OpMultiply, Decimals: cfg.AmountDecimals},
			resultUnit: base,
		},
		{
			title:      "Direktkurs",
			fieldA:     fieldDirectBase,
			fieldB:     fieldDirectQuote,
			formula:    exchange.Formula{Op: exchange.OpRatio, Decimals: cfg.RateDecimals},
			resultUnit: fmt.Sprintf("%s je %s", base, quote),
		},
		{
			title:      fmt.Sprintf("Kreuzkurs über %s", ref),
			fieldA:     fieldCrossBase,
			fieldB:     fieldCrossQuote,
			formula:    exchange.Formula{Op: exchange.OpRatio, Decimals: cfg.RateDecimals},
			resultUnit: fmt.Sprintf("%s je %s", base, quote),
		},
	}

	theme := ThemeByName(cfg.Theme)

	m := Model{
		cfg:    cfg,
		theme:  theme,
		styles: NewStyles(theme),
		logger: logger.WithName("tui"),
		fields: fields,
		panels: panels,
	}
	m.fields[m.focus].Focus()

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logger.Info("beendet")
			return m, tea.Quit

		case "tab", "down", "enter":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "ctrl+t":
			return m.toggleTheme(), nil

		case "ctrl+l":
			for i := range m.fields {
				m.fields[i].Reset()
			}
			m.logger.Debug("alle Felder geleert")
			return m, nil
		}

		// Everything else is text input for the focused field
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil
	}

	// Non-key messages (cursor blink) go to the focused field
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

// moveFocus blurs the current field (triggering display normalization)
// and focuses the neighbor delta steps away.
func (m Model) moveFocus(delta int) Model {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.fields[m.focus].Focus()
	return m
}

// toggleTheme swaps the palette wholesale and persists the preference
func (m Model) toggleTheme() Model {
	m.theme = m.theme.Toggle()
	m.styles = NewStyles(m.theme)

	if err := SaveTheme(m.theme.Name); err != nil {
		m.logger.WarnWithErr("Theme konnte nicht gespeichert werden", err)
	} else {
		m.logger.Info("Theme gewechselt", log.String("theme", m.theme.Name))
	}

	return m
}

// Theme returns the active theme
func (m Model) Theme() Theme {
	return m.theme
}

// FieldRaw returns the raw model value of a field (tests, diagnostics)
func (m Model) FieldRaw(index int) string {
	return m.fields[index].Raw()
}

// FieldDisplay returns the display text of a field (tests, diagnostics)
func (m Model) FieldDisplay(index int) string {
	return m.fields[index].Display()
}

// PanelResult returns the formatted result of a panel
func (m Model) PanelResult(index int) string {
	p := m.panels[index]
	return p.formula.Evaluate(m.fields[p.fieldA].Raw(), m.fields[p.fieldB].Raw())
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderPanels())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Kurswerk")
	subtitle := m.styles.Subtitle.Render(fmt.Sprintf("Währungsrechner %s/%s/%s",
		m.cfg.BaseCurrency, m.cfg.QuoteCurrency, m.cfg.ReferenceCurrency))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) renderPanels() string {
	rendered := make([]string, len(m.panels))
	for i := range m.panels {
		rendered[i] = m.renderPanel(i)
	}

	// Two-column grid on wide terminals, vertical stack otherwise
	if m.width >= 84 {
		top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], " ", rendered[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, rendered[2], " ", rendered[3])
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) renderPanel(index int) string {
	p := m.panels[index]
	focused := m.focus == p.fieldA || m.focus == p.fieldB

	inputs := lipgloss.JoinHorizontal(lipgloss.Top,
		m.fields[p.fieldA].View(m.styles, m.focus == p.fieldA),
		"  ",
		m.fields[p.fieldB].View(m.styles, m.focus == p.fieldB),
	)

	result := m.styles.Result.Render("= ") +
		m.styles.ResultVal.Render(m.PanelResult(index)) +
		m.styles.Result.Render(" "+p.resultUnit)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PanelTitle.Render(p.title),
		inputs,
		result,
	)

	if focused {
		return m.styles.HotPanel.Render(content)
	}
	return m.styles.Panel.Render(content)
}

func (m Model) renderFooter() string {
	help := strings.Join([]string{
		m.styles.RenderKeyHint("Tab", "Feld wechseln"),
		m.styles.RenderKeyHint("Ctrl+T", "Theme"),
		m.styles.RenderKeyHint("Ctrl+L", "Leeren"),
		m.styles.RenderKeyHint("Ctrl+C", "Beenden"),
	}, "  ")
	themeBadge := fmt.Sprintf("Theme: %s", m.theme.Name)

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(themeBadge) - 4
	if gap < 1 {
		gap = 1
	}

	return m.styles.StatusBar.Width(m.width).Render(
		help + strings.Repeat(" ", gap) + themeBadge,
	)
}
