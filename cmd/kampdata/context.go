package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"kampdata/internal/config"
	"kampdata/internal/extractor"
	"kampdata/internal/ingest"
	"kampdata/internal/logging"
	"kampdata/internal/retry"
	"kampdata/internal/services/deepseek"
	"kampdata/internal/store"
	"kampdata/internal/teams"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// withStore opens the match database for the duration of fn. The store holds
// a process lock, so commands open it late and close it promptly.
func (c *commandContext) withStore(fn func(cfg *config.Config, st *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(cfg, st)
}

func (c *commandContext) resolver() (*teams.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	table, err := teams.LoadTable(cfg.Teams.AliasPath)
	if err != nil {
		return nil, err
	}
	return teams.NewResolver(table), nil
}

// withCoordinator wires the full ingestion pipeline: DeepSeek client,
// retrying extractor, team resolver, and store.
func (c *commandContext) withCoordinator(fn func(coord *ingest.Coordinator) error) error {
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	resolver, err := c.resolver()
	if err != nil {
		return err
	}
	return c.withStore(func(cfg *config.Config, st *store.Store) error {
		client := deepseek.NewClient(deepseek.Config{
			APIKey:         cfg.Extractor.APIKey,
			BaseURL:        cfg.Extractor.BaseURL,
			Model:          cfg.Extractor.Model,
			Temperature:    cfg.Extractor.Temperature,
			TimeoutSeconds: cfg.Extractor.TimeoutSeconds,
		})
		ext := extractor.New(client,
			extractor.WithRetryPolicy(retry.Policy{
				MaxAttempts: cfg.Extractor.RetryMaxAttempts,
				BaseDelay:   time.Duration(cfg.Extractor.RetryBaseSeconds) * time.Second,
				MaxDelay:    time.Duration(cfg.Extractor.RetryMaxSeconds) * time.Second,
			}),
			extractor.WithLogger(logger),
		)
		return fn(ingest.New(cfg, st, ext, resolver, logger))
	})
}
