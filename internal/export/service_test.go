package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/repository"
)

func TestExportXLSX(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.Open(ctx, repository.Config{Driver: "sqlite", DSN: ":memory:"}, logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	repo := repository.NewExtractionRepository(db, logger)

	ext, err := repo.Start(ctx, "/inbox/po.pdf", "hash", "")
	require.NoError(t, err)
	rec := entity.NewRecord()
	rec.BuilderType = "Profile Build Group"
	rec.PONumber = "PBG-18191-18039"
	rec.CustomerName = "Jane Doe"
	rec.Address = "1 Main St Brisbane QLD 4000"
	rec.DollarValue = 3200
	rec.SupervisorName = "Tom Hill"
	rec.JobNumber = "Tom Hill 0412345678"
	rec.DescriptionOfWorks = "Supply and install carpet"
	rec.ExtractionBackend = "mupdf"
	require.NoError(t, repo.FinishSuccess(ctx, ext.ID, rec, constants.StatusExtracted, constants.POStatusNew))

	// still running, so not exported
	_, err = repo.Start(ctx, "/inbox/other.pdf", "hash2", "")
	require.NoError(t, err)

	out, err := NewService(repo, logger).ExportXLSX(ctx, nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, headers, rows[0])

	got := rows[1]
	assert.Equal(t, "EXTRACTED", got[1])
	assert.Equal(t, "new", got[2])
	assert.Equal(t, "PBG-18191-18039", got[3])
	assert.Equal(t, "Profile Build Group", got[4])
	assert.Equal(t, "Jane Doe", got[5])
	assert.Equal(t, "3200", got[7])
	assert.Equal(t, "Tom Hill 0412345678", got[9])
	assert.Equal(t, "/inbox/po.pdf", got[12])
}

func TestExportXLSXWindowExcludesOldRows(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.Open(ctx, repository.Config{Driver: "sqlite", DSN: ":memory:"}, logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	repo := repository.NewExtractionRepository(db, logger)

	ext, err := repo.Start(ctx, "/inbox/po.pdf", "hash", "")
	require.NoError(t, err)
	require.NoError(t, repo.FinishFailure(ctx, ext.ID, "no text"))

	past := time.Now().AddDate(0, 0, -10)
	out, err := NewService(repo, logger).ExportXLSX(ctx, nil, &past)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
