package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kampdata/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config file, got exists=true for %s", resolved)
	}
	if cfg.Extractor.BaseURL != "https://api.deepseek.com" {
		t.Fatalf("unexpected base url %q", cfg.Extractor.BaseURL)
	}
	if cfg.Extractor.RetryMaxAttempts != 3 {
		t.Fatalf("unexpected retry attempts %d", cfg.Extractor.RetryMaxAttempts)
	}
	if cfg.Extractor.APIKey != "env-key" {
		t.Fatalf("expected api key from environment, got %q", cfg.Extractor.APIKey)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		"[extractor]",
		`api_key = "file-key"`,
		"retry_base_seconds = 2",
		"retry_max_seconds = 8",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if cfg.Paths.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("unexpected data dir %q", cfg.Paths.DataDir)
	}
	if cfg.Extractor.APIKey != "file-key" {
		t.Fatalf("unexpected api key %q", cfg.Extractor.APIKey)
	}
	if cfg.Extractor.RetryBaseSeconds != 2 || cfg.Extractor.RetryMaxSeconds != 8 {
		t.Fatalf("unexpected retry bounds %d/%d", cfg.Extractor.RetryBaseSeconds, cfg.Extractor.RetryMaxSeconds)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "kampdata.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestValidateRejectsBadRetryBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Extractor.RetryBaseSeconds = 10
	cfg.Extractor.RetryMaxSeconds = 4
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for inverted retry bounds")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}
