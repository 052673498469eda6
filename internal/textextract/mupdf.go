package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// MuPDF extracts text through the MuPDF bindings.
type MuPDF struct {
	logger *slog.Logger
}

func NewMuPDF(logger *slog.Logger) *MuPDF {
	if logger == nil {
		logger = slog.Default()
	}
	return &MuPDF{logger: logger}
}

func (m *MuPDF) Name() string { return NameMuPDF }

func (m *MuPDF) ExtractText(_ context.Context, path string) string {
	return guard(m.logger, NameMuPDF, path, func() (string, error) {
		doc, err := fitz.New(path)
		if err != nil {
			return "", fmt.Errorf("open: %w", err)
		}
		defer doc.Close()

		pages := make([]string, 0, doc.NumPage())
		for i := 0; i < doc.NumPage(); i++ {
			t, err := doc.Text(i)
			if err != nil {
				return "", fmt.Errorf("page %d: %w", i+1, err)
			}
			pages = append(pages, t)
		}
		return strings.Join(pages, "\n"), nil
	})
}
