package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/app"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/async"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config (default $PO_CONFIG or po-extract.toml)")
		hint       = flag.String("builder", "", "builder hint, one of: "+strings.Join(constants.AsStringSlice(), ", "))
		save       = flag.Bool("save", false, "persist the extraction to the configured database")
		compact    = flag.Bool("compact", false, "print JSON on one line")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: po-extract [flags] <file.pdf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := common.NewLogger(cfg.Log, os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *hint == "" {
		*hint = cfg.Extraction.BuilderHint
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec *entity.Record
	if *save {
		a, err := app.Open(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer a.Close(context.Background())

		ext, err := a.Processor.ProcessFile(ctx, async.Job{Path: path, BuilderHint: *hint})
		if ext == nil {
			logger.Error("extraction failed", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("extraction saved", "extraction_id", ext.ID, "status", ext.Status, "po_status", ext.POStatus)
		if rec, err = ext.Decode(); err != nil {
			logger.Error("failed to decode stored record", "error", err)
			os.Exit(1)
		}
		if msg := utils.StrOrEmpty(ext.ErrorMessage); msg != "" && rec.Error == "" {
			rec.Error = msg
		}
	} else {
		rec = app.NewCascade(cfg.Extraction, logger).Run(ctx, path, *hint)
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		logger.Error("failed to write record", "error", err)
		os.Exit(1)
	}
	if rec.Error != "" {
		os.Exit(1)
	}
}
