// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/steamlens/internal/charts"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/report"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Report failed")
		os.Exit(1)
	}
}

func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewCorrelationID(ctx)
	log := logging.Ctx(ctx)

	log.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("output_dir", cfg.Report.OutputDir).
		Bool("charts", cfg.Charts.Enabled).
		Bool("duckdb", cfg.Database.Enabled).
		Msg("Configuration loaded")

	var opts []report.Option
	if cfg.Charts.Enabled {
		opts = append(opts, report.WithRenderer(charts.NewJSONRenderer(cfg.Charts.OutputDir)))
	}
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing database")
			}
		}()
		opts = append(opts, report.WithMirror(db))
	}

	start := time.Now()
	rep, err := report.NewGenerator(cfg, opts...).Generate(ctx)
	if err != nil {
		return err
	}
	path, err := report.Write(cfg.Report.OutputDir, rep)
	if err != nil {
		return err
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Warn().Err(err).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics textfile")
		}
	}

	log.Info().
		Str("report", path).
		Int("rows", rep.Rows).
		Int("charts", len(rep.Charts)).
		Dur("duration", time.Since(start)).
		Msg("Report written")
	return nil
}
