package services

import "context"

type contextKey string

const (
	runIDKey    contextKey = "run_id"
	documentKey contextKey = "document"
	sectionKey  contextKey = "section"
)

// WithRunID annotates context with the ingest run correlation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDocument annotates context with the report document name.
func WithDocument(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, documentKey, name)
}

// DocumentFromContext returns the document name if present.
func DocumentFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(documentKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSection annotates context with the report section being extracted.
func WithSection(ctx context.Context, section int) context.Context {
	if section <= 0 {
		return ctx
	}
	return context.WithValue(ctx, sectionKey, section)
}

// SectionFromContext extracts the section number if present.
func SectionFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(sectionKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	default:
		return 0, false
	}
}
