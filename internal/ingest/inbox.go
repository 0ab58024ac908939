package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"kampdata/internal/logging"
)

// InboxStats aggregates one sweep over the inbox directory.
type InboxStats struct {
	Processed int
	Failed    int
	Results   []*Result
}

// ProcessInbox ingests every report in the inbox directory, moving each file
// to the processed or failed directory according to its outcome. Files are
// handled in name order so reruns are deterministic.
func (c *Coordinator) ProcessInbox(ctx context.Context) (*InboxStats, error) {
	entries, err := os.ReadDir(c.cfg.Paths.InboxDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	stats := &InboxStats{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		source := filepath.Join(c.cfg.Paths.InboxDir, name)
		result, err := c.IngestFile(ctx, source)
		stats.Results = append(stats.Results, result)
		if err != nil {
			stats.Failed++
			c.moveReport(source, c.cfg.Paths.FailedDir, name)
			continue
		}
		stats.Processed++
		c.moveReport(source, c.cfg.Paths.ProcessedDir, name)
	}
	return stats, nil
}

func (c *Coordinator) moveReport(source, targetDir, name string) {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		c.logger.Error("create report directory", logging.String("dir", targetDir), logging.Error(err))
		return
	}
	if err := os.Rename(source, filepath.Join(targetDir, name)); err != nil {
		c.logger.Error("move report",
			logging.String(logging.FieldDocument, name),
			logging.String("dir", targetDir),
			logging.Error(err))
	}
}
