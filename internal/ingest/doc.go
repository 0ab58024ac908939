// Package ingest drives a report through the whole pipeline: match
// identification, segmentation, per-chunk extraction, storage, action
// standardization, and summary derivation. Individual chunk failures are
// tolerated and reported; a document only fails as a whole when nothing
// usable comes out of it.
package ingest
