package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// PopplerConfig configures the pdftotext backend.
type PopplerConfig struct {
	Bin     string        // default "pdftotext"
	Layout  bool          // pass -layout to keep column positions
	Timeout time.Duration // 0 means no extra bound beyond ctx
}

// Poppler shells out to poppler's pdftotext.
type Poppler struct {
	cfg    PopplerConfig
	runner Runner
	logger *slog.Logger
}

func NewPoppler(cfg PopplerConfig, runner Runner, logger *slog.Logger) *Poppler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bin == "" {
		cfg.Bin = "pdftotext"
	}
	if runner == nil {
		runner = ExecRunner{Logger: logger}
	}
	return &Poppler{cfg: cfg, runner: runner, logger: logger}
}

func (p *Poppler) Name() string { return NamePoppler }

func (p *Poppler) ExtractText(ctx context.Context, path string) string {
	return guard(p.logger, NamePoppler, path, func() (string, error) {
		if p.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
			defer cancel()
		}

		// pdftotext [-layout] -enc UTF-8 -eol unix <path> -
		args := make([]string, 0, 7)
		if p.cfg.Layout {
			args = append(args, "-layout")
		}
		args = append(args, "-enc", "UTF-8", "-eol", "unix", path, "-")

		out, errb, err := p.runner.Run(ctx, p.cfg.Bin, args...)
		if err != nil {
			return "", fmt.Errorf("%s: %w: %s", p.cfg.Bin, err, strings.TrimSpace(string(errb)))
		}
		return string(out), nil
	})
}
