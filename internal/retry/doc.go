// Package retry provides a small bounded-backoff combinator used around
// external service calls. Delays grow exponentially from a base value and are
// capped, and the loop stops early when the context is cancelled or the
// failure is classified as permanent.
package retry
