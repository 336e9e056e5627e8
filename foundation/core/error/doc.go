// File: doc.go
// Title: Package Documentation for Core Error Handling
// Description: Documents the structured error system used across Kurswerk.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package error provides structured errors for the Kurswerk foundation.
//
// Errors carry a code, a severity, the failing operation, and an optional
// detail map, while staying compatible with Go's standard error interface
// (including errors.Is/As/Unwrap chains).
//
// Basic usage:
//
//	err := kwerror.New("config file not found").
//		WithCode(kwerror.CodeNotFound).
//		WithOperation("config.Load").
//		WithDetail("path", path)
//
// Wrapping an underlying error:
//
//	if err := toml.Unmarshal(content, &data); err != nil {
//		return kwerror.Wrap(err, "TOML parse error").
//			WithCode(kwerror.CodeInvalidConfig)
//	}
package error
