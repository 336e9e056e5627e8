// File: doc.go
// Title: Package Documentation for Structured Logging
// Description: Documents the leveled, structured logging system used by
//              Kurswerk. The TUI owns the terminal, so loggers typically
//              write to a file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package log provides leveled, structured logging for Kurswerk.
//
// Loggers are immutable: the With* methods return clones, so a configured
// logger can be shared safely and specialized per component:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: file,
//		Name:   "kurswerk",
//	})
//	uiLog := logger.WithName("tui").WithField("session_id", sid)
//	uiLog.Info("theme switched", log.String("theme", "light"))
//
// Because the interactive UI draws to stdout, the default output for file
// based loggers is created via OpenLogFile which also creates the parent
// directory.
package log
