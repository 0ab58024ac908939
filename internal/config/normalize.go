package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeExtractor(); err != nil {
		return err
	}
	if err := c.normalizeTeams(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.InboxDir, err = expandPath(c.Paths.InboxDir); err != nil {
		return fmt.Errorf("paths.inbox_dir: %w", err)
	}
	if c.Paths.ProcessedDir, err = expandPath(c.Paths.ProcessedDir); err != nil {
		return fmt.Errorf("paths.processed_dir: %w", err)
	}
	if c.Paths.FailedDir, err = expandPath(c.Paths.FailedDir); err != nil {
		return fmt.Errorf("paths.failed_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeExtractor() error {
	c.Extractor.APIKey = strings.TrimSpace(c.Extractor.APIKey)
	if c.Extractor.APIKey == "" {
		c.Extractor.APIKey = strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY"))
	}
	c.Extractor.BaseURL = strings.TrimRight(strings.TrimSpace(c.Extractor.BaseURL), "/")
	if c.Extractor.BaseURL == "" {
		c.Extractor.BaseURL = defaultExtractorBaseURL
	}
	c.Extractor.Model = strings.TrimSpace(c.Extractor.Model)
	if c.Extractor.Model == "" {
		c.Extractor.Model = defaultExtractorModel
	}
	if c.Extractor.TimeoutSeconds <= 0 {
		c.Extractor.TimeoutSeconds = defaultExtractorTimeout
	}
	if c.Extractor.RetryMaxAttempts <= 0 {
		c.Extractor.RetryMaxAttempts = defaultRetryMaxAttempts
	}
	if c.Extractor.RetryBaseSeconds <= 0 {
		c.Extractor.RetryBaseSeconds = defaultRetryBaseSeconds
	}
	if c.Extractor.RetryMaxSeconds <= 0 {
		c.Extractor.RetryMaxSeconds = defaultRetryMaxSeconds
	}
	return nil
}

func (c *Config) normalizeTeams() error {
	c.Teams.AliasPath = strings.TrimSpace(c.Teams.AliasPath)
	if c.Teams.AliasPath == "" {
		return nil
	}
	expanded, err := expandPath(c.Teams.AliasPath)
	if err != nil {
		return fmt.Errorf("teams.alias_path: %w", err)
	}
	c.Teams.AliasPath = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
