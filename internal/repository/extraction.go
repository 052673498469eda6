package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

type ExtractionRepository interface {
	Start(ctx context.Context, sourcePath, contentHash, builderHint string) (*entity.Extraction, error)
	FinishSuccess(ctx context.Context, id uuid.UUID, rec *entity.Record, status constants.ExtractionStatus, poStatus constants.POStatus) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error)
	GetByHash(ctx context.Context, contentHash string) (*entity.Extraction, error)
	FindByPONumber(ctx context.Context, poNumber string, exclude uuid.UUID) ([]*entity.Extraction, error)
	List(ctx context.Context, from, to time.Time) ([]*entity.Extraction, error)
	Count(ctx context.Context) (int, error)
}

type extractionRepo struct {
	db  *DB
	log *slog.Logger
}

func NewExtractionRepository(db *DB, log *slog.Logger) ExtractionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractionRepo{db: db, log: log}
}

const selectColumns = `SELECT id, source_path, content_hash, builder_hint, builder, po_number, po_status,
	customer_name, dollar_value, status, error_message, record_json, backend, started_at, finished_at
	FROM extractions`

func (r *extractionRepo) Start(ctx context.Context, sourcePath, contentHash, builderHint string) (*entity.Extraction, error) {
	e := &entity.Extraction{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: contentHash,
		BuilderHint: builderHint,
		Status:      string(constants.StatusRunning),
		StartedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	q := r.db.rebind(`INSERT INTO extractions (id, source_path, content_hash, builder_hint, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := r.db.SQL.ExecContext(ctx, q, e.ID.String(), e.SourcePath, e.ContentHash, e.BuilderHint, e.Status, e.StartedAt.UnixMilli()); err != nil {
		r.log.Error("extraction start failed", "path", sourcePath, "err", err)
		return nil, fmt.Errorf("%w: insert extraction: %v", common.ErrDatabase, err)
	}
	r.log.Info("extraction started", "extraction_id", e.ID, "path", sourcePath)
	return e, nil
}

func (r *extractionRepo) FinishSuccess(ctx context.Context, id uuid.UUID, rec *entity.Record, status constants.ExtractionStatus, poStatus constants.POStatus) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	q := r.db.rebind(`UPDATE extractions SET builder = ?, po_number = ?, po_status = ?, customer_name = ?,
		dollar_value = ?, status = ?, record_json = ?, backend = ?, finished_at = ? WHERE id = ?`)
	res, err := r.db.SQL.ExecContext(ctx, q,
		rec.BuilderType, rec.PONumber, string(poStatus), rec.CustomerName,
		rec.DollarValue, string(status), string(raw), rec.ExtractionBackend, time.Now().UTC().UnixMilli(), id.String())
	if err != nil {
		r.log.Error("extraction finish failed", "extraction_id", id, "err", err)
		return fmt.Errorf("%w: update extraction: %v", common.ErrDatabase, err)
	}
	if err := expectOne(res); err != nil {
		return err
	}
	r.log.Info("extraction finished", "extraction_id", id, "status", status, "po_status", poStatus, "backend", rec.ExtractionBackend)
	return nil
}

func (r *extractionRepo) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	q := r.db.rebind(`UPDATE extractions SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`)
	res, err := r.db.SQL.ExecContext(ctx, q, string(constants.StatusFailed), utils.StrPtr(message), time.Now().UTC().UnixMilli(), id.String())
	if err != nil {
		r.log.Error("extraction finish(FAILED) failed", "extraction_id", id, "err", err)
		return fmt.Errorf("%w: update extraction: %v", common.ErrDatabase, err)
	}
	if err := expectOne(res); err != nil {
		return err
	}
	r.log.Warn("extraction finished (FAILED)", "extraction_id", id, "error", message)
	return nil
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row := r.db.SQL.QueryRowContext(ctx, r.db.rebind(selectColumns+` WHERE id = ?`), id.String())
	return scanOne(row)
}

// GetByHash returns the most recent extraction of a file with the given content hash.
func (r *extractionRepo) GetByHash(ctx context.Context, contentHash string) (*entity.Extraction, error) {
	row := r.db.SQL.QueryRowContext(ctx,
		r.db.rebind(selectColumns+` WHERE content_hash = ? ORDER BY started_at DESC LIMIT 1`), contentHash)
	return scanOne(row)
}

func (r *extractionRepo) FindByPONumber(ctx context.Context, poNumber string, exclude uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.db.SQL.QueryContext(ctx,
		r.db.rebind(selectColumns+` WHERE po_number = ? AND id <> ? ORDER BY started_at`), poNumber, exclude.String())
	if err != nil {
		return nil, fmt.Errorf("%w: query by po number: %v", common.ErrDatabase, err)
	}
	return scanAll(rows)
}

// List returns finished extractions started within [from, to).
func (r *extractionRepo) List(ctx context.Context, from, to time.Time) ([]*entity.Extraction, error) {
	rows, err := r.db.SQL.QueryContext(ctx,
		r.db.rebind(selectColumns+` WHERE started_at >= ? AND started_at < ? AND finished_at IS NOT NULL ORDER BY started_at`),
		from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("%w: list extractions: %v", common.ErrDatabase, err)
	}
	return scanAll(rows)
}

func (r *extractionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM extractions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count extractions: %v", common.ErrDatabase, err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*entity.Extraction, error) {
	var (
		e          entity.Extraction
		id         string
		errMsg     sql.NullString
		record     sql.NullString
		startedAt  int64
		finishedAt sql.NullInt64
	)
	if err := s.Scan(&id, &e.SourcePath, &e.ContentHash, &e.BuilderHint, &e.Builder, &e.PONumber, &e.POStatus,
		&e.CustomerName, &e.DollarValue, &e.Status, &errMsg, &record, &e.Backend, &startedAt, &finishedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bad extraction id %q: %v", common.ErrDatabase, id, err)
	}
	e.ID = parsed
	if errMsg.Valid {
		e.ErrorMessage = &errMsg.String
	}
	if record.Valid && record.String != "" {
		e.Record = json.RawMessage(record.String)
	}
	e.StartedAt = time.UnixMilli(startedAt).UTC()
	if finishedAt.Valid {
		t := time.UnixMilli(finishedAt.Int64).UTC()
		e.FinishedAt = &t
	}
	return &e, nil
}

func scanOne(row *sql.Row) (*entity.Extraction, error) {
	e, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan extraction: %v", common.ErrDatabase, err)
	}
	return e, nil
}

func scanAll(rows *sql.Rows) ([]*entity.Extraction, error) {
	defer rows.Close()
	var out []*entity.Extraction
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan extraction: %v", common.ErrDatabase, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate extractions: %v", common.ErrDatabase, err)
	}
	return out, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", common.ErrDatabase, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
