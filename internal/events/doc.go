// Package events defines the structured match-event record produced by
// extraction, validates the wire payloads the extraction service returns, and
// standardizes free-form action text onto the controlled vocabulary.
package events
