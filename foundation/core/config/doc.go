// File: doc.go
// Title: Package Documentation for Configuration Management
// Description: Documents the configuration loading and access layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package config loads and serves application configuration from TOML or
// YAML files with environment variable overrides.
//
// Values are accessed by dot-notation keys:
//
//	cfg, err := config.LoadWithOptions("~/.kurswerk/config.toml", config.LoadOptions{
//		EnvPrefix: "KURSWERK",
//	})
//	theme := cfg.GetString("ui.theme", "dark")
//
// An environment variable KURSWERK_UI_THEME always wins over the file value.
// When no config file exists, NewFromDefaults provides a purely default-backed
// configuration so callers never special-case the missing file.
package config
