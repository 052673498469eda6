package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/repository"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

const sheet = "Extractions"

var headers = []string{
	"Extracted At",
	"Status",
	"PO Status",
	"PO Number",
	"Builder",
	"Customer",
	"Address",
	"Dollar Value",
	"Supervisor",
	"Job Number",
	"Description",
	"Backend",
	"Source File",
}

// Service produces XLSX bytes for extraction exports.
type Service struct {
	repo   repository.ExtractionRepository
	logger *slog.Logger
}

func NewService(repo repository.ExtractionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportXLSX returns a workbook of finished extractions started in the window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> everything.
func (s *Service) ExportXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	lo := time.Unix(0, 0).UTC()
	if from != nil {
		lo = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	hi := time.Now().UTC()
	if to != nil {
		hi = to.UTC()
	}
	hi = time.Date(hi.Year(), hi.Month(), hi.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	rows, err := s.repo.List(ctx, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close", "err", err)
		}
	}()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range rows {
		rec, err := e.Decode()
		if err != nil {
			s.logger.Warn("export.decode.failed", "extraction_id", e.ID, "err", err)
			continue
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.StartedAt.Format("2006-01-02 15:04"))
		write(2, e.Status)
		write(3, e.POStatus)
		write(4, e.PONumber)
		write(5, rec.BuilderType)
		write(6, e.CustomerName)
		write(7, rec.Address)
		write(8, e.DollarValue)
		write(9, rec.SupervisorName)
		write(10, rec.JobNumber)
		write(11, utils.Truncate(rec.DescriptionOfWorks, 140))
		write(12, e.Backend)
		write(13, e.SourcePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // date
	_ = f.SetColWidth(sheet, "B", "C", 12) // statuses
	_ = f.SetColWidth(sheet, "D", "D", 22) // po
	_ = f.SetColWidth(sheet, "E", "F", 28)
	_ = f.SetColWidth(sheet, "G", "G", 40) // address
	_ = f.SetColWidth(sheet, "H", "H", 14)
	_ = f.SetColWidth(sheet, "I", "J", 24)
	_ = f.SetColWidth(sheet, "K", "K", 48) // description
	_ = f.SetColWidth(sheet, "L", "L", 10)
	_ = f.SetColWidth(sheet, "M", "M", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
