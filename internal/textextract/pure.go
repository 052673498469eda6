package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PurePDF extracts text with a pure Go PDF reader (no CGO, no external tools).
type PurePDF struct {
	logger *slog.Logger
}

func NewPurePDF(logger *slog.Logger) *PurePDF {
	if logger == nil {
		logger = slog.Default()
	}
	return &PurePDF{logger: logger}
}

func (p *PurePDF) Name() string { return NamePure }

func (p *PurePDF) ExtractText(_ context.Context, path string) string {
	return guard(p.logger, NamePure, path, func() (string, error) {
		f, r, err := pdf.Open(path)
		if err != nil {
			return "", fmt.Errorf("open: %w", err)
		}
		defer f.Close()

		var pages []string
		for i := 1; i <= r.NumPage(); i++ {
			page := r.Page(i)
			if page.V.IsNull() {
				continue
			}
			t, err := page.GetPlainText(nil)
			if err != nil {
				p.logger.Debug("textextract.page_skipped", "backend", NamePure, "page", i, "error", err)
				continue
			}
			pages = append(pages, t)
		}
		return strings.Join(pages, "\n"), nil
	})
}
