package events_test

import (
	"testing"

	"kampdata/internal/events"
)

func TestStandardizeMovesTrailingPosition(t *testing.T) {
	event := events.MatchEvent{Time: "4.10", Action1: "Mål VF"}
	got := events.Standardize(event)
	if got.Action1 != "Mål" || got.Position != "VF" {
		t.Fatalf("got Action1=%q Position=%q", got.Action1, got.Position)
	}
}

func TestStandardizeLeavesHalfStartAlone(t *testing.T) {
	for _, action := range []string{"Start 1:e halvleg", "Start 2:e halvleg"} {
		event := events.MatchEvent{Time: "0.00", Action1: action}
		got := events.Standardize(event)
		if got.Action1 != action || got.Position != "" {
			t.Fatalf("half start mangled: Action1=%q Position=%q", got.Action1, got.Position)
		}
	}
}

func TestStandardizeMovesNumericPosition(t *testing.T) {
	event := events.MatchEvent{Time: "8.15", Action1: "Mål", Position: "23"}
	got := events.Standardize(event)
	if got.Position != "" || got.PlayerNumber != "23" {
		t.Fatalf("got Position=%q PlayerNumber=%q", got.Position, got.PlayerNumber)
	}
}

func TestStandardizeMovesNumericAction2(t *testing.T) {
	event := events.MatchEvent{Time: "8.15", Action1: "Mål", Action2: "14"}
	got := events.Standardize(event)
	if got.Action2 != "" || got.Player2Number != "14" {
		t.Fatalf("got Action2=%q Player2Number=%q", got.Action2, got.Player2Number)
	}
}

func TestStandardizeRewritesFirstHalfMarker(t *testing.T) {
	event := events.MatchEvent{Time: "0.00", Action1: "Start", Action2: "1:e halvleg"}
	got := events.Standardize(event)
	if got.Action1 != "Start 1:e halvleg" || got.Action2 != "" {
		t.Fatalf("got Action1=%q Action2=%q", got.Action1, got.Action2)
	}
}

func TestStandardizeAppendsShoutedSurname(t *testing.T) {
	event := events.MatchEvent{Time: "12.00", Action1: "Mål", PlayerName: "Mads", Action2: "HANSEN"}
	got := events.Standardize(event)
	if got.PlayerName != "Mads HANSEN" || got.Action2 != "" {
		t.Fatalf("got PlayerName=%q Action2=%q", got.PlayerName, got.Action2)
	}

	noFirst := events.MatchEvent{Time: "12.00", Action1: "Mål", Action2: "HANSEN"}
	got = events.Standardize(noFirst)
	if got.PlayerName != "HANSEN" {
		t.Fatalf("got PlayerName=%q", got.PlayerName)
	}
}

func TestStandardizeKeepsRealSecondaryActions(t *testing.T) {
	event := events.MatchEvent{Time: "12.00", Action1: "Mål", Action2: "Assist", Player2Name: "Holm"}
	got := events.Standardize(event)
	if got != event {
		t.Fatalf("valid event changed: %+v", got)
	}
}

func TestVocabulary(t *testing.T) {
	if !events.KnownAction1("Rødt kort, direkte") {
		t.Fatal("expected direct red card in vocabulary")
	}
	if events.KnownAction1("Gult kort") {
		t.Fatal("unexpected action in vocabulary")
	}
	if !events.KnownAction2("Forårs. str.") {
		t.Fatal("expected caused-penalty in vocabulary")
	}
	if !events.KnownPosition("Gbr") || events.KnownPosition("XX") {
		t.Fatal("position vocabulary mismatch")
	}
}
