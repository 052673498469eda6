// Package textextract wraps the PDF-to-text libraries used by the extraction cascade.
//
// Every backend returns best-effort text or "". Library errors and panics are
// logged and swallowed so the caller can move on to the next backend. Text is
// passed through as the library produced it.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Backend turns a PDF file into plain text.
type Backend interface {
	Name() string
	ExtractText(ctx context.Context, path string) string
}

const (
	NameMuPDF   = "mupdf"
	NamePoppler = "poppler"
	NamePure    = "purepdf"
)

// guard runs fn, converting errors and panics into "" with a log line.
func guard(logger *slog.Logger, name, path string, fn func() (string, error)) (text string) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("textextract.panic",
				"backend", name,
				"path", path,
				"panic", fmt.Sprint(r))
			text = ""
		}
	}()

	text, err := fn()
	if err != nil {
		logger.Warn("textextract.failed",
			"backend", name,
			"path", path,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return ""
	}
	logger.Debug("textextract.ok",
		"backend", name,
		"path", path,
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds())
	return text
}
