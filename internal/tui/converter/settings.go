// ============================================================================
// Kurswerk - Interaktiver Währungsrechner
// ============================================================================
//
// Package:     converter
// Description: Settings persistence for the converter TUI
// Author:      msto63
// Created:     2026-08-12
// License:     MIT
// ============================================================================

package converter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/msto63/kurswerk/foundation/utils/filex"
)

// Settings holds persistent converter settings. Field contents are never
// stored; only the presentation preference survives a restart.
type Settings struct {
	Theme string `json:"theme,omitempty"`
}

// settingsDir returns the directory for settings files
func settingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kurswerk"
	}
	return filepath.Join(home, ".kurswerk")
}

// settingsFile returns the path to the settings file
func settingsFile() string {
	return filepath.Join(settingsDir(), "converter.json")
}

// LoadSettings loads settings from disk. A missing or unreadable file
// yields empty settings, never an error the caller must handle.
func LoadSettings() *Settings {
	data, err := filex.ReadFile(settingsFile())
	if err != nil {
		return &Settings{}
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return &Settings{}
	}

	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return filex.WriteFile(settingsFile(), data, 0o644)
}

// SaveTheme persists the active theme name
func SaveTheme(theme string) error {
	settings := LoadSettings()
	settings.Theme = theme
	return SaveSettings(settings)
}

// LoadTheme returns the persisted theme name, or empty if none
func LoadTheme() string {
	return LoadSettings().Theme
}
