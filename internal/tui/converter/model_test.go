// ============================================================================
// Kurswerk - Interaktiver Währungsrechner
// ============================================================================
//
// Package:     converter
// Description: Tests for the converter model
// Author:      msto63
// Created:     2026-08-12
// License:     MIT
// ============================================================================

package converter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	return NewModel(Config{
		BaseCurrency:      "PKR",
		QuoteCurrency:     "PHP",
		ReferenceCurrency: "USD",
		AmountDecimals:    0,
		RateDecimals:      2,
		Theme:             "dark",
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return result
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()

	return update(t, m, tea.KeyMsg{Type: key})
}

func TestTypingSanitizesAndGroups(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRaw     string
		wantDisplay string
	}{
		{"plain digits", "1234", "1234", "1,234"},
		{"with fraction", "1234.5", "1234.5", "1,234.5"},
		{"fractional zero survives", "4.80", "4.80", "4.80"},
		{"digit after fractional zero", "4.805", "4.805", "4.805"},
		{"grouped fractional zero", "1234.50", "1234.50", "1,234.50"},
		{"letters stripped", "12ab3", "123", "123"},
		{"second dot joins", "1.2.3", "1.23", "1.23"},
		{"trailing dot kept", "1234.", "1234.", "1,234."},
		{"lone dot", ".", ".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typeText(t, newTestModel(), tt.input)

			if got := m.FieldRaw(fieldBaseAmount); got != tt.wantRaw {
				t.Errorf("raw = %q, want %q", got, tt.wantRaw)
			}
			if got := m.FieldDisplay(fieldBaseAmount); got != tt.wantDisplay {
				t.Errorf("display = %q, want %q", got, tt.wantDisplay)
			}
		})
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel()

	if m.focus != fieldBaseAmount {
		t.Fatalf("initial focus = %d, want %d", m.focus, fieldBaseAmount)
	}

	for i := 1; i < fieldCount; i++ {
		m = press(t, m, tea.KeyTab)
		if m.focus != i {
			t.Fatalf("after %d tabs focus = %d, want %d", i, m.focus, i)
		}
	}

	// Wraps around
	m = press(t, m, tea.KeyTab)
	if m.focus != fieldBaseAmount {
		t.Errorf("focus after full cycle = %d, want %d", m.focus, fieldBaseAmount)
	}

	m = press(t, m, tea.KeyShiftTab)
	if m.focus != fieldCount-1 {
		t.Errorf("focus after shift+tab = %d, want %d", m.focus, fieldCount-1)
	}
}

func TestBlurNormalizesDisplayKeepsRaw(t *testing.T) {
	m := typeText(t, newTestModel(), "1234.")
	m = press(t, m, tea.KeyTab)

	if got := m.FieldRaw(fieldBaseAmount); got != "1234." {
		t.Errorf("raw after blur = %q, want %q", got, "1234.")
	}
	if got := m.FieldDisplay(fieldBaseAmount); got != "1,234" {
		t.Errorf("display after blur = %q, want %q", got, "1,234")
	}
}

func TestBlurClearsUnparsableInput(t *testing.T) {
	m := typeText(t, newTestModel(), ".")
	m = press(t, m, tea.KeyTab)

	if got := m.FieldRaw(fieldBaseAmount); got != "" {
		t.Errorf("raw after blur = %q, want empty", got)
	}
	if got := m.FieldDisplay(fieldBaseAmount); got != "" {
		t.Errorf("display after blur = %q, want empty", got)
	}
}

func TestPanelResults(t *testing.T) {
	m := newTestModel()

	// Panel 1: 50000 PKR at 4.80 PKR/PHP
	m = typeText(t, m, "50000")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "4.80")

	if got := m.PanelResult(0); got != "10,417" {
		t.Errorf("conversion result = %q, want %q", got, "10,417")
	}

	// Panel 2: 1000 PHP at 4.80 PKR/PHP
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "1000")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "4.80")

	if got := m.PanelResult(1); got != "4,800" {
		t.Errorf("inverse result = %q, want %q", got, "4,800")
	}

	// Panel 3: 50000 PKR for 10400 PHP
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "50000")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "10400")

	if got := m.PanelResult(2); got != "4.81" {
		t.Errorf("direct rate result = %q, want %q", got, "4.81")
	}

	// Panel 4: 279.50 PKR/USD and 58.75 PHP/USD
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "279.50")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "58.75")

	if got := m.PanelResult(3); got != "4.76" {
		t.Errorf("cross rate result = %q, want %q", got, "4.76")
	}
}

func TestPanelResultZeroWhileIncomplete(t *testing.T) {
	m := newTestModel()

	if got := m.PanelResult(0); got != "0" {
		t.Errorf("empty panel result = %q, want %q", got, "0")
	}

	m = typeText(t, m, "50000")
	if got := m.PanelResult(0); got != "0" {
		t.Errorf("half filled panel result = %q, want %q", got, "0")
	}

	if got := m.PanelResult(2); got != "0.00" {
		t.Errorf("empty rate panel result = %q, want %q", got, "0.00")
	}
}

func TestDivisionByZeroRendersZero(t *testing.T) {
	m := typeText(t, newTestModel(), "50000")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "0")

	if got := m.PanelResult(0); got != "0" {
		t.Errorf("division by zero result = %q, want %q", got, "0")
	}
}

func TestClearAllFields(t *testing.T) {
	m := typeText(t, newTestModel(), "50000")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "4.80")

	m = press(t, m, tea.KeyCtrlL)

	for i := 0; i < fieldCount; i++ {
		if got := m.FieldRaw(i); got != "" {
			t.Errorf("field %d raw after clear = %q, want empty", i, got)
		}
	}
	if got := m.PanelResult(0); got != "0" {
		t.Errorf("result after clear = %q, want %q", got, "0")
	}
}

func TestThemeToggle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := newTestModel()
	if m.Theme().Name != "dark" {
		t.Fatalf("initial theme = %q, want %q", m.Theme().Name, "dark")
	}

	m = press(t, m, tea.KeyCtrlT)
	if m.Theme().Name != "light" {
		t.Errorf("theme after toggle = %q, want %q", m.Theme().Name, "light")
	}
	if got := LoadTheme(); got != "light" {
		t.Errorf("persisted theme = %q, want %q", got, "light")
	}

	m = press(t, m, tea.KeyCtrlT)
	if m.Theme().Name != "dark" {
		t.Errorf("theme after second toggle = %q, want %q", m.Theme().Name, "dark")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := newTestModel().Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v: command produced %T, want tea.QuitMsg", key, cmd())
		}
	}
}

func TestViewRendering(t *testing.T) {
	m := newTestModel()

	if got := m.View(); got != "Lade..." {
		t.Errorf("view before window size = %q, want %q", got, "Lade...")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()

	for _, want := range []string{"Kurswerk", "PKR → PHP", "PHP → PKR", "Direktkurs", "Kreuzkurs über USD"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
