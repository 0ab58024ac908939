package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"kampdata/internal/config"
	"kampdata/internal/events"
	"kampdata/internal/logging"
	"kampdata/internal/report"
	"kampdata/internal/services"
	"kampdata/internal/store"
	"kampdata/internal/teams"
)

// ChunkExtractor is the slice of the extractor the coordinator needs.
type ChunkExtractor interface {
	ExtractChunk(ctx context.Context, chunk report.Chunk) ([]events.MatchEvent, error)
}

// Result reports what one document produced.
type Result struct {
	RunID        string
	Document     string
	MatchKey     string
	MatchID      int64
	Chunks       int
	EventsStored int
	FailedChunks []int
	Summary      *store.Summary
}

// Coordinator wires segmentation, extraction, and storage together.
type Coordinator struct {
	cfg       *config.Config
	store     *store.Store
	extractor ChunkExtractor
	resolver  *teams.Resolver
	logger    *slog.Logger
}

// New constructs a coordinator. A nil resolver falls back to the embedded
// alias table and a nil logger to a no-op logger.
func New(cfg *config.Config, st *store.Store, extractor ChunkExtractor, resolver *teams.Resolver, logger *slog.Logger) *Coordinator {
	if resolver == nil {
		resolver = teams.NewResolver(nil)
	}
	return &Coordinator{
		cfg:       cfg,
		store:     st,
		extractor: extractor,
		resolver:  resolver,
		logger:    logging.NewComponentLogger(logger, "ingest"),
	}
}

// IngestText processes one report held in memory. name is the originating
// filename and is used for team-identity fallback and bookkeeping.
func (c *Coordinator) IngestText(ctx context.Context, name, content string) (*Result, error) {
	result := &Result{RunID: uuid.NewString(), Document: name}
	ctx = services.WithRunID(ctx, result.RunID)
	ctx = services.WithDocument(ctx, name)
	logger := c.logger.With(
		logging.String(logging.FieldRunID, result.RunID),
		logging.String(logging.FieldDocument, name),
	)

	info, err := report.ExtractMatchInfo(content)
	if err != nil {
		return result, err
	}

	homeCode, awayCode := c.resolveCodes(logger, name, info)
	match, err := c.store.UpsertMatch(ctx, &store.Match{
		Key:        info.Key(),
		Date:       info.Date,
		HomeTeam:   info.HomeTeam,
		AwayTeam:   info.AwayTeam,
		HomeCode:   homeCode,
		AwayCode:   awayCode,
		SourceFile: filepath.Base(name),
	})
	if err != nil {
		return result, err
	}
	result.MatchKey = match.Key
	result.MatchID = match.ID
	logger.Info("match registered",
		logging.String(logging.FieldMatch, match.Key),
		logging.String("home", info.HomeTeam),
		logging.String("away", info.AwayTeam))

	chunks := report.Segment(content)
	result.Chunks = len(chunks)
	if len(chunks) == 0 {
		return result, services.Wrap(services.ErrValidation, "ingest", "segment", "no event tables found", nil)
	}

	for _, chunk := range chunks {
		extracted, err := c.extractor.ExtractChunk(ctx, chunk)
		if err != nil {
			logger.Error("chunk failed",
				logging.Int(logging.FieldSection, chunk.Number),
				logging.Error(err))
			result.FailedChunks = append(result.FailedChunks, chunk.Number)
			continue
		}
		if err := c.store.ReplaceSectionEvents(ctx, match.ID, chunk.Number, extracted); err != nil {
			logger.Error("store chunk failed",
				logging.Int(logging.FieldSection, chunk.Number),
				logging.Error(err))
			result.FailedChunks = append(result.FailedChunks, chunk.Number)
			continue
		}
		result.EventsStored += len(extracted)
	}

	if len(result.FailedChunks) == result.Chunks {
		return result, services.Wrap(services.ErrExternalService, "ingest", "extract",
			fmt.Sprintf("all %d chunks failed", result.Chunks), nil)
	}

	if _, err := c.store.StandardizeEvents(ctx, match.ID); err != nil {
		return result, err
	}
	summary, err := c.store.UpdateMatchSummary(ctx, match.ID)
	if err != nil {
		return result, err
	}
	result.Summary = summary

	logger.Info("report ingested",
		logging.String(logging.FieldMatch, match.Key),
		logging.Int("chunks", result.Chunks),
		logging.Int("events", result.EventsStored),
		logging.Int("failed_chunks", len(result.FailedChunks)))
	return result, nil
}

// IngestFile reads and processes a report file.
func (c *Coordinator) IngestFile(ctx context.Context, path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &Result{Document: filepath.Base(path)}, fmt.Errorf("read report: %w", err)
	}
	return c.IngestText(ctx, filepath.Base(path), string(raw))
}

// resolveCodes maps both sides to club codes, preferring the banner names and
// falling back to the filename when the banner spelling is unknown.
func (c *Coordinator) resolveCodes(logger *slog.Logger, name string, info report.MatchInfo) (string, string) {
	homeCode, homeOK := c.resolver.Code(info.HomeTeam)
	awayCode, awayOK := c.resolver.Code(info.AwayTeam)
	if homeOK && awayOK {
		return homeCode, awayCode
	}

	if matchup, err := teams.ParseFilename(name); err == nil {
		if !homeOK {
			homeCode, homeOK = c.resolver.Code(matchup.Home)
		}
		if !awayOK {
			awayCode, awayOK = c.resolver.Code(matchup.Away)
		}
	}
	if !homeOK {
		logger.Warn("unknown home club", logging.String("club", info.HomeTeam))
		homeCode = ""
	}
	if !awayOK {
		logger.Warn("unknown away club", logging.String("club", info.AwayTeam))
		awayCode = ""
	}
	return homeCode, awayCode
}
