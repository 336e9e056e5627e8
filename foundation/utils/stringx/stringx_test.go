// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the string helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial tests

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"word", "hello", false},
		{"word with spaces", "  hello  ", false},
		{"unicode space", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestDefaultIfBlank(t *testing.T) {
	if got := DefaultIfBlank("", "fallback"); got != "fallback" {
		t.Errorf("DefaultIfBlank(\"\") = %q, want fallback", got)
	}
	if got := DefaultIfBlank("  ", "fallback"); got != "fallback" {
		t.Errorf("DefaultIfBlank(blank) = %q, want fallback", got)
	}
	if got := DefaultIfBlank("value", "fallback"); got != "value" {
		t.Errorf("DefaultIfBlank(value) = %q, want value", got)
	}
}

func TestContainsOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   string
		want  bool
	}{
		{"digits only", "12345", "0123456789", true},
		{"digits and dot", "12.45", "0123456789.", true},
		{"letter sneaks in", "12a45", "0123456789", false},
		{"empty input", "", "0123456789", true},
		{"empty set", "1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsOnly(tt.input, tt.set); got != tt.want {
				t.Errorf("ContainsOnly(%q, %q) = %v, want %v", tt.input, tt.set, got, tt.want)
			}
		})
	}
}

func TestCountRune(t *testing.T) {
	tests := []struct {
		input string
		r     rune
		want  int
	}{
		{"1.2.3", '.', 2},
		{"no dots", '.', 0},
		{"...", '.', 3},
		{"", '.', 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CountRune(tt.input, tt.r); got != tt.want {
				t.Errorf("CountRune(%q, %q) = %v, want %v", tt.input, tt.r, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"fits", "short", 10, "...", "short"},
		{"truncated", "a longer string", 8, "...", "a lon..."},
		{"zero max", "anything", 0, "...", ""},
		{"ellipsis too long", "abcdef", 2, "...", "ab"},
		{"unicode safe", "äöüäöü", 4, "…", "äöü…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}
