// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Command steamlens builds an analytics report from a Steam game catalog CSV.

One run:

 1. Configuration: Koanf v2 layers defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Catalog: the CSV at DATASET_PATH is parsed into an immutable table
 4. Queries: rankings, group statistics, platform growth and yearly trends
 5. Charts (optional): five chart documents written to CHART_OUTPUT_DIR
 6. DuckDB (optional): the treated catalog is mirrored and the SQL answers
    are cross-checked against the in-memory ones
 7. Output: report.json in REPORT_OUTPUT_DIR and, when METRICS_TEXTFILE_PATH
    is set, a Prometheus textfile

# Configuration

Configuration is loaded with the following priority (highest wins):
  - Environment variables
  - Config file (CONFIG_PATH, ./config.yaml or /etc/steamlens/config.yaml)
  - Built-in defaults

# Example Usage

	export DATASET_PATH=base/dataset/steam_games.csv
	export DUCKDB_ENABLED=true
	export LOG_FORMAT=console
	./steamlens

# Signal Handling

SIGINT and SIGTERM cancel the run. The catalog loader and the DuckDB mirror
observe the cancellation and the command exits non-zero.
*/
package main
