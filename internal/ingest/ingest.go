package ingest

import (
	"context"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	HashHex      string
	Deduplicated bool
	// PriorID is the earlier extraction of identical content, when deduplicated.
	PriorID string
	Queued  bool
	Err     string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Options apply to every file of one ingest call.
type Options struct {
	BuilderHint string
	Force       bool // queue even when the content was already extracted
	SkipHidden  bool
}

// Ingestor is the behavior the commands depend on.
type Ingestor interface {
	// IngestPath a single path.
	IngestPath(ctx context.Context, path string, opts Options) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root string, opts Options) ([]IngestionResult, DirStats, error)
}
