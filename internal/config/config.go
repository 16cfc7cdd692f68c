// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Sheets  SheetsConfig
	Logging LoggingConfig
}

// SheetsConfig holds settings for the backing spreadsheet.
type SheetsConfig struct {
	// SpreadsheetID is the identifier of the spreadsheet container (required)
	// Supports both SHEETDB_SPREADSHEET_ID and SPREADSHEET_ID for compatibility
	SpreadsheetID string `env:"SHEETDB_SPREADSHEET_ID" envAlt:"SPREADSHEET_ID" required:"true"`

	// CredentialsFile is a path to a service account JSON key file
	CredentialsFile string `env:"SHEETDB_CREDENTIALS_FILE"`

	// CredentialsJSON is inline service account JSON key material.
	// Takes precedence over CredentialsFile when both are set.
	CredentialsJSON string `env:"SHEETDB_CREDENTIALS_JSON"`

	// RequestTimeout is the maximum duration for a single remote call (default: 30s)
	RequestTimeout time.Duration `env:"SHEETDB_REQUEST_TIMEOUT" default:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Sheets.SpreadsheetID == "" {
		errs = append(errs, "SHEETDB_SPREADSHEET_ID is required")
	}
	if c.Sheets.CredentialsFile == "" && c.Sheets.CredentialsJSON == "" {
		errs = append(errs, "one of SHEETDB_CREDENTIALS_FILE or SHEETDB_CREDENTIALS_JSON is required")
	}
	if c.Sheets.RequestTimeout <= 0 {
		errs = append(errs, "SHEETDB_REQUEST_TIMEOUT must be positive")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be text or json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
