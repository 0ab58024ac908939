package report_test

import (
	"errors"
	"testing"

	"kampdata/internal/report"
	"kampdata/internal/services"
)

const sampleHeader = `Håndbold Ligaen 5-9-2024 19:00
Jutlander Bank Arena

KAMPHÆNDELSER  Aalborg Håndbold - GOG 35
Tid Score Hold Handling
`

func TestExtractMatchInfo(t *testing.T) {
	info, err := report.ExtractMatchInfo(sampleHeader)
	if err != nil {
		t.Fatalf("ExtractMatchInfo: %v", err)
	}
	if info.Date != "05-09-2024" {
		t.Fatalf("date = %q, want 05-09-2024", info.Date)
	}
	if info.HomeTeam != "Aalborg Håndbold" {
		t.Fatalf("home = %q", info.HomeTeam)
	}
	if info.AwayTeam != "GOG" {
		t.Fatalf("away = %q", info.AwayTeam)
	}
}

func TestExtractMatchInfoMissingDate(t *testing.T) {
	_, err := report.ExtractMatchInfo("KAMPHÆNDELSER Aalborg Håndbold - GOG 1")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExtractMatchInfoMissingClubs(t *testing.T) {
	_, err := report.ExtractMatchInfo("kamp spillet 5-9-2024 uden banner")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFileStemSanitizesName(t *testing.T) {
	info := report.MatchInfo{Date: "05-09-2024", HomeTeam: "Aalborg Håndbold", AwayTeam: "GOG"}
	stem := info.FileStem()
	if stem != "05-09-2024_Aalborg_H_ndbold_vs_GOG" {
		t.Fatalf("stem = %q", stem)
	}
}

func TestKeyIsStableSlug(t *testing.T) {
	info := report.MatchInfo{Date: "05-09-2024", HomeTeam: "Aalborg Håndbold", AwayTeam: "GOG"}
	key := info.Key()
	if key != "05-09-2024-aalborg-handbold-vs-gog" {
		t.Fatalf("key = %q", key)
	}
	if again := info.Key(); again != key {
		t.Fatalf("key not stable: %q then %q", key, again)
	}
}
