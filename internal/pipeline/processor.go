// Package pipeline persists one cascade run per job: start row, extract,
// validate, classify the PO number and finish the row.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/async"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/cascade"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/repository"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

const (
	maxHintLen = 128
	maxPOLen   = 64
)

// Extractor turns a PDF path into a record.
type Extractor interface {
	Run(ctx context.Context, path, hint string) *entity.Record
}

type Processor struct {
	logger    *slog.Logger
	extractor Extractor
	repo      repository.ExtractionRepository
}

var _ async.Processor = (*Processor)(nil)

func NewProcessor(logger *slog.Logger, extractor Extractor, repo repository.ExtractionRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, extractor: extractor, repo: repo}
}

// ProcessFile runs the cascade for job.Path and records the outcome.
// A record carrying an error with no essential fields, or one that fails
// schema validation, finishes the row as FAILED and returns an error.
func (p *Processor) ProcessFile(ctx context.Context, job async.Job) (*entity.Extraction, error) {
	if err := common.NewValidator().Field("builder_hint", job.BuilderHint, common.MaxLength(maxHintLen)).Error(); err != nil {
		return nil, common.NewAppError("INVALID_INPUT", err.Error(), common.ErrInvalidInput)
	}
	if job.ContentHash == "" {
		sum, err := utils.HashFile(job.Path)
		if err != nil {
			common.LoggerFromContext(ctx, p.logger).Error("processor.hash.failed", "path", job.Path, "err", err)
			return nil, common.WrapError(err, "hash "+job.Path)
		}
		job.ContentHash = sum
	}

	ext, err := p.repo.Start(ctx, job.Path, job.ContentHash, job.BuilderHint)
	if err != nil {
		return nil, common.WrapError(err, "start extraction")
	}
	ctx = common.WithExtractionID(ctx, ext.ID.String())
	log := common.LoggerFromContext(ctx, p.logger).With("path", job.Path)

	rec := p.extractor.Run(ctx, job.Path, job.BuilderHint)

	if rec.Error != "" && !cascade.HasEssentialFields(rec) {
		log.Error("processor.extract.failed", "err", rec.Error)
		return p.fail(ctx, ext, rec.Error)
	}
	if err := rec.Validate(); err != nil {
		log.Error("processor.validate.failed", "err", err)
		return p.fail(ctx, ext, err.Error())
	}

	status := constants.StatusEmpty
	if cascade.HasEssentialFields(rec) {
		status = constants.StatusExtracted
	}
	poStatus, err := p.poStatus(ctx, log, rec.PONumber, ext)
	if err != nil {
		return p.fail(ctx, ext, err.Error())
	}

	if err := p.repo.FinishSuccess(ctx, ext.ID, rec, status, poStatus); err != nil {
		return nil, err
	}
	log.Info("processor.ok",
		"status", status,
		"po_status", poStatus,
		"builder", rec.BuilderType,
		"backend", rec.ExtractionBackend)
	return p.repo.GetByID(ctx, ext.ID)
}

// poStatus is missing without a usable PO number, duplicate when another
// successful extraction already carries it, new otherwise.
func (p *Processor) poStatus(ctx context.Context, log *slog.Logger, po string, current *entity.Extraction) (constants.POStatus, error) {
	if po == "" {
		return constants.POStatusMissing, nil
	}
	if err := common.NewValidator().Field("po_number", po, common.PONumber, common.MaxLength(maxPOLen)).Error(); err != nil {
		log.Warn("processor.po_number.invalid", "po_number", po, "err", err)
		return constants.POStatusMissing, nil
	}
	others, err := p.repo.FindByPONumber(ctx, po, current.ID)
	if err != nil {
		return "", common.WrapError(err, "check po number")
	}
	for _, o := range others {
		if o.Status != string(constants.StatusFailed) {
			return constants.POStatusDuplicate, nil
		}
	}
	return constants.POStatusNew, nil
}

func (p *Processor) fail(ctx context.Context, ext *entity.Extraction, msg string) (*entity.Extraction, error) {
	if err := p.repo.FinishFailure(ctx, ext.ID, msg); err != nil {
		return nil, errors.Join(errors.New(msg), err)
	}
	out, err := p.repo.GetByID(ctx, ext.ID)
	if err != nil {
		return nil, err
	}
	return out, common.NewAppError("EXTRACTION_FAILED", msg, common.ErrInternal)
}
