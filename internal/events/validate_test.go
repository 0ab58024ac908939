package events_test

import (
	"testing"

	"kampdata/internal/events"
)

func TestValidTime(t *testing.T) {
	valid := []string{"0.00", "5.59", "12.34", "59.59", "60.00"}
	for _, v := range valid {
		if !events.ValidTime(v) {
			t.Fatalf("ValidTime(%q) = false", v)
		}
	}
	invalid := []string{"", "12.345", "123.45", "12:34", "12.3", "p.30", "12.34 "}
	for _, v := range invalid {
		if events.ValidTime(v) {
			t.Fatalf("ValidTime(%q) = true", v)
		}
	}
}

func TestValidWireDropsBadEventsKeepsSiblings(t *testing.T) {
	good := map[string]any{
		"Time":         "12.34",
		"Action1":      "Mål",
		"TeamInitials": "AAH",
		"Position":     nil,
	}
	bad := map[string]any{
		"Time":    "12.345",
		"Action1": "Mål",
	}
	if !events.ValidWire(good) {
		t.Fatal("expected valid event to pass")
	}
	if events.ValidWire(bad) {
		t.Fatal("expected malformed time to be rejected")
	}
}

func TestValidWireRejectsNonStringValues(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"Time": nil},
		{"Time": 12.34},
		{"Time": "12.34", "PlayerNumber": 7},
		{"Time": "12.34", "ScoreUpdate": []any{"1", "0"}},
	}
	for i, event := range cases {
		if events.ValidWire(event) {
			t.Fatalf("case %d: expected rejection of %v", i, event)
		}
	}
}

func TestValidWireRejectsNonObjectItems(t *testing.T) {
	cases := []any{
		nil,
		float64(5),
		"12.34",
		[]any{map[string]any{"Time": "12.34"}},
	}
	for i, event := range cases {
		if events.ValidWire(event) {
			t.Fatalf("case %d: expected rejection of %v", i, event)
		}
	}
}

func TestFromWire(t *testing.T) {
	wire := map[string]any{
		"Time":         "3.05",
		"ScoreUpdate":  "1-0",
		"TeamInitials": "AAH",
		"Action1":      "Mål",
		"PlayerNumber": "7",
		"PlayerName":   "Jensen",
		"Position":     nil,
	}
	event := events.FromWire(wire, 2)
	if event.Time != "3.05" || event.ScoreUpdate != "1-0" || event.TeamInitials != "AAH" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Position != "" || event.Action2 != "" {
		t.Fatalf("missing fields must be empty: %+v", event)
	}
	if event.SectionNumber != 2 {
		t.Fatalf("section = %d", event.SectionNumber)
	}
}
