// Package cascade drives extraction across text backends until a record carries
// at least one essential field.
package cascade

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/detect"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/extract"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/normalize"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/textextract"
)

// Stage is a state of the backend fallback machine.
type Stage int

const (
	StageMuPDF Stage = iota
	StagePoppler
	StagePure
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageMuPDF:
		return "mupdf"
	case StagePoppler:
		return "poppler"
	case StagePure:
		return "purepdf"
	default:
		return "done"
	}
}

// ProbeFunc validates the input file before any backend runs.
type ProbeFunc func(path string, logger *slog.Logger) (textextract.FileInfo, error)

// Config wires the cascade's collaborators. Nil fields get production defaults.
type Config struct {
	// Backends in stage order. Defaults to MuPDF, Poppler, PurePDF.
	Backends   []textextract.Backend
	Poppler    textextract.PopplerConfig
	Extractor  *extract.Extractor
	Normalizer *normalize.Normalizer
	Probe      ProbeFunc
}

// Cascade runs backend -> detect -> extract -> normalize per stage.
// It keeps no per-run state and may be shared across goroutines.
type Cascade struct {
	backends   []textextract.Backend
	extractor  *extract.Extractor
	normalizer *normalize.Normalizer
	probe      ProbeFunc
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Backends) == 0 {
		cfg.Backends = []textextract.Backend{
			textextract.NewMuPDF(logger),
			textextract.NewPoppler(cfg.Poppler, nil, logger),
			textextract.NewPurePDF(logger),
		}
	}
	if cfg.Extractor == nil {
		cfg.Extractor = extract.NewExtractor(logger)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalize.NewNormalizer(nil, logger)
	}
	if cfg.Probe == nil {
		cfg.Probe = textextract.Probe
	}
	return &Cascade{
		backends:   cfg.Backends,
		extractor:  cfg.Extractor,
		normalizer: cfg.Normalizer,
		probe:      cfg.Probe,
		logger:     logger,
	}
}

// HasEssentialFields reports whether the record is good enough to stop escalating.
func HasEssentialFields(r *entity.Record) bool {
	return r.CustomerName != "" ||
		r.PONumber != "" ||
		r.DescriptionOfWorks != "" ||
		r.DollarValue > 0
}

// Run extracts one PDF. It always returns a record; unexpected failures are
// reported in the record's error field.
func (c *Cascade) Run(ctx context.Context, path, hint string) (out *entity.Record) {
	out = entity.NewRecord()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("cascade.panic",
				"path", path,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
			out.Error = fmt.Sprintf("extraction failed: %v", r)
		}
	}()

	if _, err := c.probe(path, c.logger); err != nil {
		c.logger.Error("cascade.probe.failed", "path", path, "error", err)
		out.Error = err.Error()
		return out
	}

	stage := StageMuPDF
	for stage != StageDone {
		rec, ok := c.runStage(ctx, stage, path, hint)
		if ok {
			out = rec
			if HasEssentialFields(rec) {
				c.logger.Info("cascade.done",
					"path", path,
					"stage", stage.String(),
					"builder", rec.BuilderType,
					"po_number", rec.PONumber)
				return out
			}
			c.logger.Info("cascade.escalate",
				"path", path,
				"stage", stage.String(),
				"reason", "no essential fields")
		}
		stage = c.next(stage)
	}

	c.logger.Warn("cascade.exhausted", "path", path, "backend", out.ExtractionBackend)
	return out
}

func (c *Cascade) next(s Stage) Stage {
	if int(s)+1 >= len(c.backends) || s+1 >= StageDone {
		return StageDone
	}
	return s + 1
}

// runStage returns a fresh record built from the stage's text, or false when
// the backend produced no text.
func (c *Cascade) runStage(ctx context.Context, s Stage, path, hint string) (*entity.Record, bool) {
	backend := c.backends[s]
	text := backend.ExtractText(ctx, path)
	if text == "" {
		c.logger.Info("cascade.no_text", "path", path, "backend", backend.Name())
		return nil, false
	}

	d := detect.Detect(text, hint)
	rec := c.extractor.Extract(text, d, entity.NewRecord())
	rec = c.normalizer.Normalize(rec)
	rec.ExtractionBackend = backend.Name()
	return rec, true
}
