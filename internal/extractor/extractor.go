package extractor

import (
	"context"
	"log/slog"

	"kampdata/internal/events"
	"kampdata/internal/logging"
	"kampdata/internal/report"
	"kampdata/internal/retry"
	"kampdata/internal/services"
	"kampdata/internal/services/deepseek"
)

// ChatClient is the slice of the DeepSeek client the extractor needs.
type ChatClient interface {
	ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Extractor converts report chunks into validated match events.
type Extractor struct {
	client ChatClient
	policy retry.Policy
	logger *slog.Logger
}

// Option customizes the extractor.
type Option func(*Extractor)

// WithRetryPolicy overrides the default retry bounds.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(e *Extractor) {
		e.policy = policy
	}
}

// WithLogger attaches a logger; a no-op logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an extractor around a chat client.
func New(client ChatClient, opts ...Option) *Extractor {
	e := &Extractor{
		client: client,
		policy: retry.DefaultPolicy(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "extractor")
	return e
}

// ExtractChunk sends one chunk through the chat API and returns its valid
// events stamped with the chunk number. Events that fail validation are
// logged and dropped without failing the chunk; transport and decode failures
// are retried before the chunk is reported as failed.
func (e *Extractor) ExtractChunk(ctx context.Context, chunk report.Chunk) ([]events.MatchEvent, error) {
	ctx = services.WithSection(ctx, chunk.Number)

	var extracted []events.MatchEvent
	err := retry.Do(ctx, e.policy, func(ctx context.Context) error {
		content, err := e.client.ChatJSON(ctx, deepseek.EventExtractionPrompt, chunk.Text())
		if err != nil {
			return err
		}
		wire, err := deepseek.DecodeEvents(content)
		if err != nil {
			return err
		}
		extracted = extracted[:0]
		for _, raw := range wire {
			if !events.ValidWire(raw) {
				e.logger.Warn("dropping invalid event",
					logging.Int(logging.FieldSection, chunk.Number),
					logging.Any("event", raw))
				continue
			}
			record := raw.(map[string]any)
			extracted = append(extracted, events.FromWire(record, chunk.Number))
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrExternalService, "extractor", "extract chunk", "", err)
	}
	e.logger.Info("chunk extracted",
		logging.Int(logging.FieldSection, chunk.Number),
		logging.Int("events", len(extracted)))
	return extracted, nil
}
