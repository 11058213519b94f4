package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/littlefrontender/reporter/pkg/stacktrace"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// variable overrides applied and validated. Used when no config file is
// given.
func FromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating environment config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and expands environment
// references in credentials.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := validateSnippet(&cfg.Snippet); err != nil {
		return fmt.Errorf("snippet: %w", err)
	}

	for i, dir := range cfg.VendorDirs {
		if strings.ContainsAny(dir, "/\\") {
			return fmt.Errorf("vendor_dirs[%d] (%s): must be a bare directory name, not a path", i, dir)
		}
	}

	return nil
}

func validateServer(s *ServerConfig) error {
	// Expand environment variables in the API key
	s.APIKey = expandEnvVar(s.APIKey)

	// Pushing is optional; only validate the URL when one is set
	if s.URL == "" {
		return nil
	}

	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	if s.Timeout <= 0 {
		s.Timeout = DefaultServerTimeout
	}

	return nil
}

func validateSnippet(s *SnippetConfig) error {
	if s.Before < 0 {
		return errors.New("before must be >= 0")
	}

	if s.Limit < 1 {
		return errors.New("limit must be >= 1")
	}

	if _, err := stacktrace.ParseLanguage(s.Language); err != nil {
		return err
	}

	return nil
}

// Language returns the configured snippet language as a stacktrace hint.
// "auto" and empty map to LangNone; AutoDetect reports whether per-trace
// detection should run.
func (c *Config) Language() (stacktrace.Language, bool) {
	lang, _ := stacktrace.ParseLanguage(c.Snippet.Language)
	auto := c.Snippet.Language == "" || strings.EqualFold(c.Snippet.Language, "auto")
	return lang, auto
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
