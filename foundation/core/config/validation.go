// File: validation.go
// Title: Configuration Validation
// Description: Implements rule based validation for configuration values
//              covering presence, type, bounds, and enumerations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package config

import (
	"fmt"

	kwerror "github.com/msto63/kurswerk/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool          // Whether the key must be present
	Type     string        // Expected type: "string", "int", "bool", "float"
	Min      *float64      // Minimum numeric value (inclusive)
	Max      *float64      // Maximum numeric value (inclusive)
	OneOf    []string      // Allowed string values
	Default  interface{}   // Default applied when the key is absent
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult collects all validation failures
type ValidationResult struct {
	Errors []error
}

// Valid reports whether validation succeeded
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error message for all failures
func (r *ValidationResult) Error() string {
	if r.Valid() {
		return ""
	}
	msg := fmt.Sprintf("%d validation error(s):", len(r.Errors))
	for _, err := range r.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate checks the configuration against the given rules.
// Defaults from rules are applied to absent keys before checking.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{}

	for key, rule := range rules {
		if !c.Has(key) {
			if rule.Default != nil {
				c.Set(key, rule.Default)
				continue
			}
			if rule.Required {
				result.Errors = append(result.Errors,
					kwerror.Newf("required key %q is missing", key).
						WithCode(kwerror.CodeRequiredField).
						WithOperation("config.Validate"))
			}
			continue
		}

		if err := c.validateField(key, rule); err != nil {
			result.Errors = append(result.Errors, err)
		}
	}

	return result
}

// validateField checks one present key against its rule
func (c *Config) validateField(key string, rule ValidationRule) error {
	switch rule.Type {
	case "int":
		value := c.GetInt(key)
		return c.validateBounds(key, float64(value), rule)
	case "float":
		value := c.GetFloat(key)
		return c.validateBounds(key, value, rule)
	case "bool":
		// GetBool coerces everything; nothing further to check
		return nil
	case "string", "":
		if len(rule.OneOf) > 0 {
			value := c.GetString(key)
			for _, allowed := range rule.OneOf {
				if value == allowed {
					return nil
				}
			}
			return kwerror.Newf("key %q has value %q, allowed: %v", key, value, rule.OneOf).
				WithCode(kwerror.CodeValueOutOfRange).
				WithOperation("config.Validate")
		}
		return nil
	default:
		return kwerror.Newf("key %q has unsupported rule type %q", key, rule.Type).
			WithCode(kwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
}

// validateBounds checks numeric min/max constraints
func (c *Config) validateBounds(key string, value float64, rule ValidationRule) error {
	if rule.Min != nil && value < *rule.Min {
		return kwerror.Newf("key %q value %v is below minimum %v", key, value, *rule.Min).
			WithCode(kwerror.CodeValueOutOfRange).
			WithOperation("config.Validate")
	}
	if rule.Max != nil && value > *rule.Max {
		return kwerror.Newf("key %q value %v is above maximum %v", key, value, *rule.Max).
			WithCode(kwerror.CodeValueOutOfRange).
			WithOperation("config.Validate")
	}
	return nil
}

// FloatPtr is a convenience helper for building bounds in ValidationRules
func FloatPtr(v float64) *float64 {
	return &v
}
