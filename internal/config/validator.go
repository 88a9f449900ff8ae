package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "inventory.base_url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// Validate checks the configuration and returns all failures found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Inventory.BaseURL == "" {
		errs = append(errs, ValidationError{
			Field:   "inventory.base_url",
			Value:   c.Inventory.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.Inventory.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "inventory.base_url",
			Value:   c.Inventory.BaseURL,
			Message: "must be an absolute URL",
		})
	}

	if c.Inventory.TimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{
			Field:   "inventory.timeout_seconds",
			Value:   c.Inventory.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	if c.TUI.MaxResultLines <= 0 {
		errs = append(errs, ValidationError{
			Field:   "tui.max_result_lines",
			Value:   c.TUI.MaxResultLines,
			Message: "must be positive",
		})
	}

	if !slices.Contains(validLogLevels, strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(validLogLevels, ", ")),
		})
	}

	return errs
}
