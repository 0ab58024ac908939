// Package teams resolves Danish league handball club identities. Club names
// arrive in several shapes (report filenames with encoding-mangled
// underscores, on-court initials, display names), and this package folds them
// onto stable three-letter codes via a normalizer and an alias table.
package teams
