package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config failed validation: %v", ValidationErrors(errs))
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty base url",
			mutate:    func(c *Config) { c.Inventory.BaseURL = "" },
			wantField: "inventory.base_url",
		},
		{
			name:      "relative base url",
			mutate:    func(c *Config) { c.Inventory.BaseURL = "localhost:8000" },
			wantField: "inventory.base_url",
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.Inventory.TimeoutSeconds = 0 },
			wantField: "inventory.timeout_seconds",
		},
		{
			name:      "negative result lines",
			mutate:    func(c *Config) { c.TUI.MaxResultLines = -1 },
			wantField: "tui.max_result_lines",
		},
		{
			name:      "bogus log level",
			mutate:    func(c *Config) { c.Logging.Level = "LOUD" },
			wantField: "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Field == tc.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tc.wantField, ValidationErrors(errs))
			}
		})
	}
}

func TestLogLevelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("lowercase level rejected: %v", ValidationErrors(errs))
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want count prefix", msg)
	}
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("Error() = %q, missing individual errors", msg)
	}
}

func TestInventoryTimeout(t *testing.T) {
	c := InventoryConfig{TimeoutSeconds: 5}
	if got := c.Timeout().Seconds(); got != 5 {
		t.Errorf("Timeout() = %vs, want 5s", got)
	}
}
