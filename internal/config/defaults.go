package config

const (
	defaultDataDir      = "~/.local/share/kampdata/data"
	defaultLogDir       = "~/.local/share/kampdata/logs"
	defaultInboxDir     = "~/.local/share/kampdata/reports/inbox"
	defaultProcessedDir = "~/.local/share/kampdata/reports/processed"
	defaultFailedDir    = "~/.local/share/kampdata/reports/failed"

	defaultExtractorBaseURL     = "https://api.deepseek.com"
	defaultExtractorModel       = "deepseek-chat"
	defaultExtractorTemperature = 0.1
	defaultExtractorTimeout     = 60

	defaultRetryMaxAttempts = 3
	defaultRetryBaseSeconds = 4
	defaultRetryMaxSeconds  = 10

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			LogDir:       defaultLogDir,
			InboxDir:     defaultInboxDir,
			ProcessedDir: defaultProcessedDir,
			FailedDir:    defaultFailedDir,
		},
		Extractor: Extractor{
			BaseURL:          defaultExtractorBaseURL,
			Model:            defaultExtractorModel,
			Temperature:      defaultExtractorTemperature,
			TimeoutSeconds:   defaultExtractorTimeout,
			RetryMaxAttempts: defaultRetryMaxAttempts,
			RetryBaseSeconds: defaultRetryBaseSeconds,
			RetryMaxSeconds:  defaultRetryMaxSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
