// Package services defines shared utilities consumed by the ingest pipeline
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, document names, and report
//     sections for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures so
//     the coordinator can route documents to the processed or failed outcome.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across ingestion.
package services
