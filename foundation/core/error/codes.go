// File: codes.go
// Title: Error Codes
// Description: Defines the structured error codes used across Kurswerk for
//              categorizing failures in configuration, input handling, and
//              internal operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial set of codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the Kurswerk application
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input and validation
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat    Code = "INVALID_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Settings persistence
	CodeSettingsError Code = "SETTINGS_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeSettingsError:
		return true
	default:
		return false
	}
}

// Category returns the broad category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidFormat:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "config"
	case CodeSettingsError:
		return "settings"
	case CodeNotFound:
		return "lookup"
	default:
		return "general"
	}
}
