// Package store persists matches, their extracted events, and derived
// summary data in a single SQLite database. One process owns the database at
// a time, guarded by a lock file next to it; writes that re-process a report
// replace the affected sections so ingestion stays idempotent.
package store
