// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides and defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kwerror "github.com/msto63/kurswerk/foundation/core/error"
	"github.com/msto63/kurswerk/foundation/utils/filex"
	"github.com/msto63/kurswerk/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, kwerror.New("config file path cannot be empty").
			WithCode(kwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	if !filex.Exists(filePath) {
		return nil, kwerror.Newf("config file not found: %s", filePath).
			WithCode(kwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := filex.ReadFile(filePath)
	if err != nil {
		return nil, kwerror.Wrap(err, "failed to read config file").
			WithCode(kwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, kwerror.Wrap(err, "failed to parse config file").
			WithCode(kwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, kwerror.Wrap(err, "failed to parse config from string").
			WithCode(kwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// NewFromDefaults creates a config backed only by the given defaults,
// used when no config file exists.
func NewFromDefaults(defaults map[string]interface{}, envPrefix string) *Config {
	data := make(map[string]interface{})
	if defaults != nil {
		data = mergeDefaults(data, defaults)
	}
	return &Config{data: data, format: FormatTOML, envPrefix: envPrefix}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, kwerror.Wrap(err, "YAML parse error").
				WithCode(kwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, kwerror.Wrap(err, "TOML parse error").
				WithCode(kwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	return data, nil
}

// mergeDefaults overlays data on top of defaults. Default keys may use
// dot notation ("currency.base"), which is expanded into the nested shape
// getValue walks; values already present in data always win.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range data {
		result[k] = v
	}
	for k, v := range defaults {
		setDefault(result, strings.Split(k, "."), v)
	}
	return result
}

// setDefault writes v at the key path unless a value is already there
func setDefault(m map[string]interface{}, path []string, v interface{}) {
	head := path[0]
	if len(path) == 1 {
		if _, exists := m[head]; !exists {
			m[head] = v
		}
		return
	}

	next, ok := m[head].(map[string]interface{})
	if !ok {
		if _, exists := m[head]; exists {
			// loaded data occupies this branch with another shape; it wins
			return
		}
		next = make(map[string]interface{})
		m[head] = next
	}
	setDefault(next, path[1:], v)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// getValue resolves a dot-notation key against the nested data map.
// Caller must hold at least a read lock.
func (c *Config) getValue(key string) interface{} {
	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			current = m[part]
		case map[interface{}]interface{}:
			// yaml.v3 may produce interface-keyed maps for some inputs
			current = m[part]
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}

	return current
}

// getEnvValue looks up the environment override for a key.
// Caller must hold at least a read lock.
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts "ui.theme" to "PREFIX_UI_THEME"
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return c.envPrefix + "_" + envKey
}

// Has reports whether the key exists in the configuration data
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set stores a value under a dot-notation key, creating nested maps as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filePath
}

// Format returns the configuration format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.format
}
