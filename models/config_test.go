package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("NEBIUS_API_KEY", "")
	t.Setenv("NEBIUS_BASE_URL", "")
	t.Setenv("NEBIUS_MODEL", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want default", cfg.Model)
	}
	if cfg.MaxWords != DefaultMaxWords {
		t.Errorf("MaxWords = %d, want %d", cfg.MaxWords, DefaultMaxWords)
	}
	if cfg.PageLoadTimeout != DefaultPageLoadTimeout {
		t.Errorf("PageLoadTimeout = %v, want %v", cfg.PageLoadTimeout, DefaultPageLoadTimeout)
	}
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	t.Setenv("NEBIUS_API_KEY", "secret")
	t.Setenv("NEBIUS_BASE_URL", "")
	t.Setenv("NEBIUS_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `model: custom/model
user_agent: TestAgent/1.0
max_words: 500
page_load_timeout: 90s
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Model != "custom/model" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.UserAgent != "TestAgent/1.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.MaxWords != 500 {
		t.Errorf("MaxWords = %d", cfg.MaxWords)
	}
	if cfg.PageLoadTimeout != 90*time.Second {
		t.Errorf("PageLoadTimeout = %v", cfg.PageLoadTimeout)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, env must win", cfg.APIKey)
	}
}

func TestLoadConfig_MissingYAMLIsFine(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed for absent file: %v", err)
	}
	if cfg.Model == "" {
		t.Error("defaults not applied")
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_load_timeout: soon\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestRequireAPIKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}

	cfg.APIKey = "k"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Errorf("unexpected error with key set: %v", err)
	}
}
