// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type with code, severity,
//              operation context, and a detail map while staying compatible
//              with Go's standard error interface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
	timestamp time.Time
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// Wrapping nil returns nil so call sites can wrap unconditionally.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}

	// Preserve code and severity of an already structured cause
	if kwErr, ok := err.(*Error); ok {
		wrapped.code = kwErr.code
		wrapped.severity = kwErr.severity
	}

	return wrapped
}

// WithCode sets the error code and adjusts the severity to the code's default
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key/value pair to the detail map
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the detail map
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)

	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

// Message returns the message without operation prefix or cause chain
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the wrapped cause, enabling errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// RootCause walks the cause chain and returns the innermost error
func (e *Error) RootCause() error {
	var current error = e
	for {
		kwErr, ok := current.(*Error)
		if !ok || kwErr.cause == nil {
			return current
		}
		current = kwErr.cause
	}
}

// HasCode reports whether err is an *Error carrying the given code
func HasCode(err error, code Code) bool {
	kwErr, ok := err.(*Error)
	return ok && kwErr.code == code
}
