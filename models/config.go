// Package models defines configuration structures shared across the tool.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey indicates the inference API key is absent from the
// environment. Reported before any browser or network activity.
var ErrMissingAPIKey = errors.New("missing API key (set NEBIUS_API_KEY)")

const (
	DefaultBaseURL = "https://api.studio.nebius.com/v1/"
	DefaultModel   = "mistralai/Mixtral-8x7B-Instruct-v0.1-fast"

	// DefaultUserAgent mimics a standard desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

	// DefaultMaxWords bounds the text submitted to the model.
	DefaultMaxWords = 20000

	DefaultPageLoadTimeout = 60 * time.Second
)

// Config holds process-wide configuration. Built once at startup, passed
// down explicitly, never mutated after Load.
type Config struct {
	APIKey  string `env:"NEBIUS_API_KEY"`
	BaseURL string `env:"NEBIUS_BASE_URL"`
	Model   string `env:"NEBIUS_MODEL"`

	UserAgent       string
	ExtensionDir    string
	MaxWords        int
	PageLoadTimeout time.Duration
}

// fileConfig is the config.yaml overlay. Durations are strings so users
// can write "90s" instead of nanoseconds.
type fileConfig struct {
	BaseURL         string `yaml:"base_url"`
	Model           string `yaml:"model"`
	UserAgent       string `yaml:"user_agent"`
	ExtensionDir    string `yaml:"extension_dir"`
	MaxWords        int    `yaml:"max_words"`
	PageLoadTimeout string `yaml:"page_load_timeout"`
}

// LoadConfig builds the Config from, in order: defaults, an optional
// config.yaml overlay, a .env file (if present), and the environment.
// The environment always wins for credentials.
func LoadConfig(yamlPath string) (*Config, error) {
	cfg := &Config{
		BaseURL:         DefaultBaseURL,
		Model:           DefaultModel,
		UserAgent:       DefaultUserAgent,
		ExtensionDir:    "extension",
		MaxWords:        DefaultMaxWords,
		PageLoadTimeout: DefaultPageLoadTimeout,
	}

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
			}
			if err := cfg.applyFile(fc); err != nil {
				return nil, fmt.Errorf("invalid value in %s: %w", yamlPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
		}
	}

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultMaxWords
	}
	if cfg.PageLoadTimeout <= 0 {
		cfg.PageLoadTimeout = DefaultPageLoadTimeout
	}

	return cfg, nil
}

// applyFile overlays the non-empty fields of a parsed config.yaml.
func (c *Config) applyFile(fc fileConfig) error {
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Model != "" {
		c.Model = fc.Model
	}
	if fc.UserAgent != "" {
		c.UserAgent = fc.UserAgent
	}
	if fc.ExtensionDir != "" {
		c.ExtensionDir = fc.ExtensionDir
	}
	if fc.MaxWords > 0 {
		c.MaxWords = fc.MaxWords
	}
	if fc.PageLoadTimeout != "" {
		d, err := time.ParseDuration(fc.PageLoadTimeout)
		if err != nil {
			return fmt.Errorf("page_load_timeout: %w", err)
		}
		c.PageLoadTimeout = d
	}
	return nil
}

// RequireAPIKey returns ErrMissingAPIKey when no key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
