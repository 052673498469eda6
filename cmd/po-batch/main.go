package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/app"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/ingest"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config")
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir        = flag.String("dir", "", "directory of purchase-order PDFs (required)")
		out        = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		hint       = flag.String("builder", "", "builder hint applied to every file, one of: "+strings.Join(constants.AsStringSlice(), ", "))
		force      = flag.Bool("force", false, "re-extract files whose content was already extracted")
		fromStr    = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr      = flag.String("to", "", "export to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(filepath.Clean(*dir)), "purchase-orders.xlsx")
	}

	from, err := parseDate(*fromStr)
	if err != nil {
		printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}
	to, err := parseDate(*toStr)
	if err != nil {
		printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ":memory:"
	}
	if *hint == "" {
		*hint = cfg.Extraction.BuilderHint
	}
	logger := common.NewLogger(cfg.Log, os.Stdout)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer a.Close(ctx)

	results, stats, err := a.Ingestor.IngestDirectory(ctx, *dir, ingest.Options{
		BuilderHint: *hint,
		Force:       *force,
		SkipHidden:  true,
	})
	if err != nil {
		logger.Error("ingest failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	queued := 0
	for _, r := range results {
		if r.Queued {
			queued++
		}
		if r.Err != "" {
			logger.Warn("file skipped", "path", r.SourcePath, "error", r.Err)
		}
	}

	// Wait for every queued extraction before exporting.
	a.Queue.Shutdown(ctx)

	data, err := a.Export.ExportXLSX(ctx, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write export", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete",
		"matched", stats.Matched,
		"queued", queued,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
		"out", *out)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
