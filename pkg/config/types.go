// Package config provides configuration loading and validation for the
// reporting client.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Server     ServerConfig  `yaml:"server,omitempty"`
	Snippet    SnippetConfig `yaml:"snippet,omitempty"`
	VendorDirs []string      `yaml:"vendor_dirs,omitempty"`
}

// ServerConfig describes the remote reporting endpoint.
type ServerConfig struct {
	// URL is the base URL of the reporting server. Empty disables pushing.
	URL string `yaml:"url,omitempty"`

	// APIKey authenticates requests. Supports ${VAR} environment
	// expansion so keys stay out of config files.
	APIKey string `yaml:"api_key,omitempty"`

	// RunID reuses an existing run on the server instead of creating one.
	RunID string `yaml:"run_id,omitempty"`

	// RunTitle names runs created by the client.
	RunTitle string `yaml:"run_title,omitempty"`

	// Environment labels the run (e.g. "ci", "staging").
	Environment string `yaml:"environment,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// SnippetConfig controls source-snippet extraction for failed tests.
type SnippetConfig struct {
	// Before is the number of lookback lines above the failing line.
	Before int `yaml:"before"`

	// Limit is the maximum number of lines in a snippet.
	Limit int `yaml:"limit"`

	// Language selects the stop heuristics. "auto" detects per trace.
	Language string `yaml:"language,omitempty"`
}
