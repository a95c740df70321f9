// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package config provides configuration management for Steamlens.

Configuration is loaded by LoadWithKoanf in three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml or
    /etc/steamlens/config.yaml
 3. Environment variables

# Sections

  - dataset: location of the catalog CSV
  - catalog: fill values used by normalization
  - charts: chart output directory, typography and the all-platform bonus
  - report: report output directory and query parameters
  - database: optional DuckDB mirror of the catalog
  - logging: zerolog level, format and caller annotation
  - metrics: Prometheus textfile export

# Environment Variables

Dataset and catalog:
  - DATASET_PATH: catalog CSV (default: base/dataset/steam_games.csv)
  - UNKNOWN_PUBLISHER: fill for missing publishers (default: Unknown)
  - MOVIE_FILL: fill for missing movie links (default: No Movie)

Charts:
  - CHARTS_ENABLED: render chart documents (default: true)
  - CHART_OUTPUT_DIR: chart directory (default: out/charts)
  - CHART_FONT_FAMILIES: comma-separated font list (default: Noto Sans CJK JP,Noto Sans CJK SC)
  - CHART_UNICODE_MINUS: draw unicode minus glyphs (default: false)
  - CHART_ALL_PLATFORM_BONUS: double count all-platform games in the OS pie (default: true)

Report:
  - REPORT_OUTPUT_DIR: report directory (default: out)
  - REPORT_TOP_N, REPORT_TOP_K: ranking sizes (default: 10, 5)
  - REPORT_PUBLISHERS: comma-separated publishers for the review summary
  - REPORT_GROWTH_PLATFORM, REPORT_GROWTH_YEAR_MIN, REPORT_GROWTH_YEAR_MAX:
    platform growth window (default: Linux, 2018, 2022)

DuckDB:
  - DUCKDB_ENABLED: mirror the catalog into DuckDB (default: false)
  - DUCKDB_PATH: database file or :memory: (default: :memory:)
  - DUCKDB_MAX_MEMORY: memory limit (default: 1GB)
  - DUCKDB_THREADS: worker threads, 0 = NumCPU (default: 0)
  - DUCKDB_PRESERVE_INSERTION_ORDER (default: true)

Logging and metrics:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller (default: false)
  - METRICS_TEXTFILE_PATH: Prometheus textfile output (default: disabled)

# Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	tbl, err := catalog.LoadFile(ctx, cfg.Dataset.Path)
*/
package config
