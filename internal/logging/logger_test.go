package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersComponent(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	logger := slog.New(newConsoleHandler(&buf, level))

	scoped := NewComponentLogger(logger, "ingest")
	scoped.Info("processed report", String("document", "kamp.txt"), Int("events", 42))

	line := buf.String()
	if !strings.Contains(line, "[ingest]") {
		t.Fatalf("expected component marker in output, got %q", line)
	}
	if !strings.Contains(line, "processed report") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "document=kamp.txt") {
		t.Fatalf("expected attribute in output, got %q", line)
	}
	if !strings.Contains(line, "events=42") {
		t.Fatalf("expected attribute in output, got %q", line)
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	logger := slog.New(newJSONHandler(&buf, level))

	logger.Info("saved", String(FieldMatch, "aah-vs-gog"), Int(FieldSection, 3))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if payload["msg"] != "saved" {
		t.Fatalf("expected msg field, got %v", payload)
	}
	if payload[FieldMatch] != "aah-vs-gog" {
		t.Fatalf("expected match field, got %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts field, got %v", payload)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, level))

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info suppressed, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("expected warn emitted, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"junk":  slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNoopHandlerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop logger should never be enabled")
	}
	logger.Error("ignored")
}
