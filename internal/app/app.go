// Package app wires configuration into the extraction stack shared by the commands.
package app

import (
	"context"
	"log/slog"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/async"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/cascade"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/export"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/ingest"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/normalize"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/pipeline"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/repository"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/textextract"
)

// NewCascade builds the backend cascade from the extraction settings.
func NewCascade(cfg common.ExtractionConfig, logger *slog.Logger) *cascade.Cascade {
	return cascade.New(cascade.Config{
		Poppler: textextract.PopplerConfig{
			Bin:     cfg.PdftotextBin,
			Layout:  cfg.PopplerLayout,
			Timeout: cfg.BackendTimeout,
		},
		Normalizer: normalize.NewNormalizer(cfg.ExcludedNumbers, logger),
	}, logger)
}

// App holds the persistent stack: store, processor, queue and services on top.
type App struct {
	DB        *repository.DB
	Repo      repository.ExtractionRepository
	Cascade   *cascade.Cascade
	Processor *pipeline.Processor
	Queue     *async.ProcessorQueue
	Ingestor  *ingest.FSIngestor
	Export    *export.Service
}

// Open connects the configured store and starts the worker queue.
func Open(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.Open(ctx, repository.ConfigFrom(cfg.Database), logger)
	if err != nil {
		return nil, err
	}
	repo := repository.NewExtractionRepository(db, logger)
	c := NewCascade(cfg.Extraction, logger)
	proc := pipeline.NewProcessor(logger, c, repo)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)
	return &App{
		DB:        db,
		Repo:      repo,
		Cascade:   c,
		Processor: proc,
		Queue:     queue,
		Ingestor:  ingest.NewFSIngestor(repo, queue, logger),
		Export:    export.NewService(repo, logger),
	}, nil
}

// Close drains the queue, then closes the store.
func (a *App) Close(ctx context.Context) {
	a.Queue.Shutdown(ctx)
	a.DB.Close()
}
