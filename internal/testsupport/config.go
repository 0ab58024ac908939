package testsupport

import (
	"path/filepath"
	"testing"

	"kampdata/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.InboxDir = filepath.Join(base, "inbox")
	cfg.Paths.ProcessedDir = filepath.Join(base, "processed")
	cfg.Paths.FailedDir = filepath.Join(base, "failed")
	cfg.Extractor.APIKey = "test-key"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAPIKey sets the extraction service key on the test config.
func WithAPIKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extractor.APIKey = key
	}
}

// WithAliasPath points the test config at a custom alias table.
func WithAliasPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Teams.AliasPath = path
	}
}
