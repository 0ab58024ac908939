package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateExtractor(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.InboxDir == "" {
		return errors.New("paths.inbox_dir must be set")
	}
	return nil
}

func (c *Config) validateExtractor() error {
	if err := ensurePositiveMap(map[string]int{
		"extractor.timeout_seconds":    c.Extractor.TimeoutSeconds,
		"extractor.retry_max_attempts": c.Extractor.RetryMaxAttempts,
		"extractor.retry_base_seconds": c.Extractor.RetryBaseSeconds,
		"extractor.retry_max_seconds":  c.Extractor.RetryMaxSeconds,
	}); err != nil {
		return err
	}
	if c.Extractor.RetryMaxSeconds < c.Extractor.RetryBaseSeconds {
		return errors.New("extractor.retry_max_seconds must not be below extractor.retry_base_seconds")
	}
	if c.Extractor.Temperature < 0 || c.Extractor.Temperature > 2 {
		return errors.New("extractor.temperature must be between 0 and 2")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
