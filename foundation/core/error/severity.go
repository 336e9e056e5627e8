// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from error
//              codes to a default severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional settings
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable settings file, ignored config key
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unparsable configuration, unwritable log destination
	SeverityHigh

	// SeverityCritical indicates an error that makes the application unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeMissingConfig, CodeSettingsError, CodeNotFound:
		return SeverityMedium
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidFormat:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
