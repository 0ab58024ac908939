// Package logging assembles structured slog loggers used across kampdata.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so ingestion code tags log lines with
// match keys, section numbers, and run identifiers consistently. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
