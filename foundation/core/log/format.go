// File: format.go
// Title: Log Output Formatters
// Description: Implements text and JSON formatters that turn log entries
//              into writable byte slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the log output format
type Format int

const (
	// FormatText produces human readable single-line output (default)
	FormatText Format = iota

	// FormatJSON produces one JSON object per line
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter converts a log entry into writable bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// TextFormatter formats entries as single human readable lines
type TextFormatter struct {
	// EnableColors adds ANSI colors to the level tag
	EnableColors bool

	// TimestampFormat overrides the timestamp layout (default time.RFC3339)
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with defaults
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteString(" ")

	if f.EnableColors {
		b.WriteString(entry.Level.Color())
		b.WriteString(entry.Level.ShortString())
		b.WriteString("\033[0m")
	} else {
		b.WriteString(entry.Level.ShortString())
	}

	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if entry.SessionID != "" {
		b.WriteString(" session_id=")
		b.WriteString(entry.SessionID)
	}

	// Deterministic field order for readable diffs and stable tests
	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(" ")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(formatValue(entry.Fields[k]))
		}
	}

	if entry.Error != nil {
		b.WriteString(" error=")
		b.WriteString(formatValue(entry.Error.Error()))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// formatValue renders a field value, quoting strings that contain spaces
func formatValue(value interface{}) string {
	s := fmt.Sprintf("%v", value)
	if strings.ContainsAny(s, " \t=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// JSONFormatter formats entries as one JSON object per line
type JSONFormatter struct {
	// TimestampFormat overrides the timestamp layout (default time.RFC3339)
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with defaults
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(layout),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.SessionID != "" {
		data["session_id"] = entry.SessionID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	for k, v := range entry.Fields {
		// Reserved keys must not be overwritten by user fields
		switch k {
		case "timestamp", "level", "message", "logger", "session_id", "error":
			data["field_"+k] = v
		default:
			data[k] = v
		}
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return append(line, '\n'), nil
}
