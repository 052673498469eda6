package async

import (
	"context"
	"time"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
)

// Job is one PDF waiting for extraction.
type Job struct {
	Path        string
	ContentHash string // hex sha256; computed by the processor when empty
	BuilderHint string
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor runs one job to completion.
type Processor interface {
	ProcessFile(ctx context.Context, job Job) (*entity.Extraction, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, job Job) (*entity.Extraction, error)

func (f ProcessorFunc) ProcessFile(ctx context.Context, job Job) (*entity.Extraction, error) {
	return f(ctx, job)
}
