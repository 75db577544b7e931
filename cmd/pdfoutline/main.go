package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/dgallion1/pdfoutline/internal/batch"
	"github.com/dgallion1/pdfoutline/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	input := flag.String("input", cfg.InputDir, "directory of input documents")
	output := flag.String("output", cfg.OutputDir, "directory for output records")
	workers := flag.Int("workers", cfg.WorkerCount, "number of extraction workers")
	flag.Parse()
	cfg.InputDir = *input
	cfg.OutputDir = *output
	cfg.WorkerCount = *workers

	log.Info("starting batch extraction", "input", cfg.InputDir, "output", cfg.OutputDir, "workers", cfg.WorkerCount)

	runner := batch.NewRunner(cfg, log)
	runner.Start(context.Background())

	submitted, err := runner.SubmitDir(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Error("batch submit failed", "error", err)
		runner.Drain()
		os.Exit(1)
	}
	runner.Drain()

	completed, failed := runner.Counts()
	log.Info("processing completed", "submitted", submitted, "completed", completed, "failed", failed)
	if failed > 0 && completed == 0 {
		os.Exit(1)
	}
}
