package textextract

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
)

// FileInfo describes a probed input file.
type FileInfo struct {
	Size  int64
	MIME  string
	Pages int // 0 when the page tree could not be read
}

// Probe checks that path is a readable PDF. I/O failures and non-PDF content
// are returned as errors; a page-count failure is only logged.
func Probe(path string, logger *slog.Logger) (FileInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return FileInfo{}, common.NewAppError("NOT_A_FILE", path, common.ErrInvalidInput)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("read %s: %w", path, err)
	}
	info := FileInfo{Size: st.Size(), MIME: mt.String()}
	if !mt.Is(constants.MimePDF) {
		return info, common.NewAppError("UNSUPPORTED_FILE", fmt.Sprintf("%s is %s", path, mt.String()), common.ErrUnsupportedFile)
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		logger.Warn("textextract.probe.page_count_failed", "path", path, "error", err)
		return info, nil
	}
	info.Pages = n
	return info, nil
}
