// ============================================================================
// Kurswerk - Interaktiver Währungsrechner
// ============================================================================
//
// Package:     converter
// Description: Numeric text field wrapping bubbles/textinput. Owns the raw
//              canonical value and keeps the grouped display in sync.
// Author:      msto63
// Created:     2026-08-12
// License:     MIT
// ============================================================================

package converter

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/kurswerk/internal/exchange"
)

// Field is a numeric input. The textinput shows the grouped display text;
// the canonical ungrouped value lives in raw and is the only thing the
// computation layer ever sees.
type Field struct {
	label string
	raw   string
	input textinput.Model
}

// NewField creates a numeric field with the given label and placeholder
func NewField(label, placeholder string, width int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 24
	ti.Width = width
	ti.Prompt = ""

	return Field{label: label, input: ti}
}

// Update feeds a message to the underlying textinput, then sanitizes the
// typed text into the raw model value and re-renders the grouped display.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	f.raw = exchange.Sanitize(exchange.StripDisplay(f.input.Value()))

	display := exchange.Display(f.raw)
	if f.input.Value() != display {
		f.input.SetValue(display)
		f.input.CursorEnd()
	}

	return f, cmd
}

// Focus gives the field keyboard focus
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus and applies the normalization rule: a parsable raw
// keeps its value but gets the canonical display (uncommitted trailing
// decimal point dropped); unparsable raw resets the field entirely.
func (f *Field) Blur() {
	f.input.Blur()

	raw, display := exchange.Normalize(f.raw)
	f.raw = raw
	f.input.SetValue(display)
	f.input.CursorEnd()
}

// Focused reports whether the field has keyboard focus
func (f Field) Focused() bool {
	return f.input.Focused()
}

// Raw returns the canonical ungrouped value
func (f Field) Raw() string {
	return f.raw
}

// Display returns the text currently shown in the input
func (f Field) Display() string {
	return f.input.Value()
}

// Label returns the field label
func (f Field) Label() string {
	return f.label
}

// SetRaw replaces the model value programmatically (resets, tests)
func (f *Field) SetRaw(raw string) {
	f.raw = exchange.Sanitize(raw)
	f.input.SetValue(exchange.Display(f.raw))
	f.input.CursorEnd()
}

// Reset clears both the raw value and the display
func (f *Field) Reset() {
	f.raw = ""
	f.input.SetValue("")
}

// View renders the label and the input box
func (f Field) View(st Styles, focused bool) string {
	box := st.Input
	if focused {
		box = st.HotInput
	}

	return st.FieldLabel.Render(f.label) + "\n" + box.Render(f.input.View())
}
