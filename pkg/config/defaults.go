package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultServerTimeout = 10 * time.Second
	DefaultBefore        = 3
	DefaultLimit         = 7
	DefaultLanguage      = "auto"
)

// DefaultVendorDirs are the directory segments treated as third-party code.
var DefaultVendorDirs = []string{"node_modules", "vendor"}

// Environment variable names.
const (
	EnvURL         = "REPORTER_URL"
	EnvAPIKey      = "REPORTER_API_KEY"
	EnvRunID       = "REPORTER_RUN_ID"
	EnvRunTitle    = "REPORTER_RUN_TITLE"
	EnvEnvironment = "REPORTER_ENV"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Timeout: DefaultServerTimeout,
		},
		Snippet: SnippetConfig{
			Before:   DefaultBefore,
			Limit:    DefaultLimit,
			Language: DefaultLanguage,
		},
		VendorDirs: DefaultVendorDirs,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if url := os.Getenv(EnvURL); url != "" {
		c.Server.URL = url
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.Server.APIKey = key
	}
	if runID := os.Getenv(EnvRunID); runID != "" {
		c.Server.RunID = runID
	}
	if title := os.Getenv(EnvRunTitle); title != "" {
		c.Server.RunTitle = title
	}
	if env := os.Getenv(EnvEnvironment); env != "" {
		c.Server.Environment = env
	}
}
