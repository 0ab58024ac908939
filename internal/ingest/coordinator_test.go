package ingest_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kampdata/internal/events"
	"kampdata/internal/ingest"
	"kampdata/internal/report"
	"kampdata/internal/services"
	"kampdata/internal/testsupport"
)

const reportText = `Håndbold Ligaen 5-9-2024 19:00

KAMPHÆNDELSER  Aalborg Håndbold - GOG 3
Tid Score Hold Handling
0.00 AAH Start 1:e halvleg
1.10 1-0 AAH Mål VF 7 Jensen
2.30 1-1 GOG Mål ST 11 Larsen
KAMPHÆNDELSER  Aalborg Håndbold - GOG 3
Software ReportWriter
`

// scriptedExtractor maps chunk numbers to canned responses.
type scriptedExtractor struct {
	events map[int][]events.MatchEvent
	errs   map[int]error
	calls  []int
}

func (s *scriptedExtractor) ExtractChunk(ctx context.Context, chunk report.Chunk) ([]events.MatchEvent, error) {
	s.calls = append(s.calls, chunk.Number)
	if err, ok := s.errs[chunk.Number]; ok {
		return nil, err
	}
	return s.events[chunk.Number], nil
}

func chunkEvents(section int) []events.MatchEvent {
	return []events.MatchEvent{
		{Time: "1.10", ScoreUpdate: "1-0", TeamInitials: "AAH", Action1: "Mål VF",
			PlayerNumber: "7", PlayerName: "Jensen", SectionNumber: section},
		{Time: "2.30", ScoreUpdate: "1-1", TeamInitials: "GOG", Action1: "Mål",
			Position: "ST", PlayerNumber: "11", PlayerName: "Larsen", SectionNumber: section},
	}
}

func TestIngestTextHappyPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ext := &scriptedExtractor{events: map[int][]events.MatchEvent{1: chunkEvents(1)}}
	coord := ingest.New(cfg, st, ext, nil, nil)

	result, err := coord.IngestText(context.Background(), "05-09-2024_Aalborg_H_ndbold_vs_GOG.txt", reportText)
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if result.Chunks != 1 || result.EventsStored != 2 || len(result.FailedChunks) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.MatchKey != "05-09-2024-aalborg-handbold-vs-gog" {
		t.Fatalf("match key = %q", result.MatchKey)
	}

	match, err := st.MatchByKey(context.Background(), result.MatchKey)
	if err != nil || match == nil {
		t.Fatalf("match lookup: %v %v", match, err)
	}
	if match.HomeCode != "AAH" || match.AwayCode != "GOG" {
		t.Fatalf("codes = %q/%q", match.HomeCode, match.AwayCode)
	}
	if match.HomeScore != 1 || match.AwayScore != 1 {
		t.Fatalf("score = %d-%d", match.HomeScore, match.AwayScore)
	}

	stored, err := st.EventsForMatch(context.Background(), match.ID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	// Standardization ran: the trailing position moved off the action.
	if stored[0].Action1 != "Mål" || stored[0].Position != "VF" {
		t.Fatalf("standardization missing: %+v", stored[0])
	}
}

func TestIngestTextToleratesPartialChunkFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	// 30 rows produce two chunks; fail the second.
	var b strings.Builder
	b.WriteString("kamp 5-9-2024\nKAMPHÆNDELSER  Aalborg Håndbold - GOG 3\n")
	b.WriteString("Tid Score Hold Handling\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "%d.00 rad\n", i)
	}
	b.WriteString("Software\n")

	ext := &scriptedExtractor{
		events: map[int][]events.MatchEvent{1: chunkEvents(1)},
		errs:   map[int]error{2: errors.New("extraction exploded")},
	}
	coord := ingest.New(cfg, st, ext, nil, nil)

	result, err := coord.IngestText(context.Background(), "05-09-2024_Aalborg_H_ndbold_vs_GOG.txt", b.String())
	if err != nil {
		t.Fatalf("partial failure must not fail the document: %v", err)
	}
	if result.Chunks != 2 || result.EventsStored != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.FailedChunks) != 1 || result.FailedChunks[0] != 2 {
		t.Fatalf("failed chunks = %v", result.FailedChunks)
	}
	if len(ext.calls) != 2 {
		t.Fatalf("expected both chunks attempted, got %v", ext.calls)
	}
}

func TestIngestTextFailsWhenAllChunksFail(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ext := &scriptedExtractor{errs: map[int]error{1: errors.New("boom")}}
	coord := ingest.New(cfg, st, ext, nil, nil)

	_, err := coord.IngestText(context.Background(), "05-09-2024_Aalborg_H_ndbold_vs_GOG.txt", reportText)
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service failure, got %v", err)
	}
}

func TestIngestTextRejectsReportWithoutMatchInfo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	coord := ingest.New(cfg, st, &scriptedExtractor{}, nil, nil)

	_, err := coord.IngestText(context.Background(), "junk.txt", "no structure here")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIngestTextIsIdempotentAcrossReruns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ext := &scriptedExtractor{events: map[int][]events.MatchEvent{1: chunkEvents(1)}}
	coord := ingest.New(cfg, st, ext, nil, nil)

	name := "05-09-2024_Aalborg_H_ndbold_vs_GOG.txt"
	first, err := coord.IngestText(context.Background(), name, reportText)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	second, err := coord.IngestText(context.Background(), name, reportText)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if first.MatchID != second.MatchID {
		t.Fatalf("match id changed: %d then %d", first.MatchID, second.MatchID)
	}
	count, err := st.EventCount(context.Background(), second.MatchID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 events after rerun, got %d", count)
	}
}

func TestProcessInboxMovesFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ext := &scriptedExtractor{events: map[int][]events.MatchEvent{1: chunkEvents(1)}}
	coord := ingest.New(cfg, st, ext, nil, nil)

	good := "05-09-2024_Aalborg_H_ndbold_vs_GOG.txt"
	bad := "00-00-0000_broken.txt"
	testsupport.WriteReport(t, filepath.Join(cfg.Paths.InboxDir, good), reportText)
	testsupport.WriteReport(t, filepath.Join(cfg.Paths.InboxDir, bad), "nothing useful")
	testsupport.WriteReport(t, filepath.Join(cfg.Paths.InboxDir, "notes.md"), "ignored")

	stats, err := coord.ProcessInbox(context.Background())
	if err != nil {
		t.Fatalf("ProcessInbox: %v", err)
	}
	if stats.Processed != 1 || stats.Failed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.ProcessedDir, good)); err != nil {
		t.Fatalf("processed file not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.FailedDir, bad)); err != nil {
		t.Fatalf("failed file not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.InboxDir, "notes.md")); err != nil {
		t.Fatalf("non-report file must stay in inbox: %v", err)
	}
}
