package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/async"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/repository"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

// FSIngestor reads PDFs from the local filesystem and queues them for extraction.
type FSIngestor struct {
	Repo   repository.ExtractionRepository
	Queue  async.Queue
	Logger *slog.Logger
}

func NewFSIngestor(repo repository.ExtractionRepository, q async.Queue, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Repo: repo, Queue: q, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string, opts Options) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}
	out.SourcePath = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, common.NewAppError("UNSUPPORTED_FILE", fmt.Sprintf("extension %q", ext), common.ErrUnsupportedFile)
	}

	sum, err := utils.HashFile(abs)
	if err != nil {
		i.Logger.Error("hash error", "path", abs, "error", err)
		return out, common.WrapError(err, "ingest "+abs)
	}
	out.HashHex = sum

	prior, err := i.Repo.GetByHash(ctx, sum)
	switch {
	case errors.Is(err, common.ErrNotFound):
	case err != nil:
		return out, common.WrapError(err, "lookup content hash")
	case prior.Status != string(constants.StatusFailed):
		out.Deduplicated = true
		out.PriorID = prior.ID.String()
	}

	if out.Deduplicated && !opts.Force {
		i.Logger.Info("skipping already extracted file", "path", abs, "prior_id", out.PriorID)
		return out, nil
	}

	if err := i.Queue.Enqueue(ctx, async.Job{
		Path:        abs,
		ContentHash: sum,
		BuilderHint: opts.BuilderHint,
		Force:       opts.Force,
	}); err != nil {
		return out, err
	}
	out.Queued = true
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, opts Options) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, common.NewAppError("INVALID_INPUT", "root_path is required", common.ErrInvalidInput)
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if opts.SkipHidden && path != root && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path, opts)
		if err != nil {
			r.SourcePath = path
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	i.Logger.Info("directory ingested",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed)
	return results, stats, nil
}
