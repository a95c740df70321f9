// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package metrics provides Prometheus instrumentation for Steamlens.

Steamlens has no HTTP surface, so metrics are exported with WriteTextfile for
node_exporter's textfile collector rather than served on /metrics.

# Available Metrics

Catalog:
  - steamlens_rows_loaded: rows in the last loaded catalog (gauge)
  - steamlens_load_duration_seconds: CSV parse time (histogram)
  - steamlens_load_errors_total: failed loads (counter)

Queries:
  - steamlens_query_duration_seconds: in-memory query time (histogram)
    Labels: query
  - steamlens_query_errors_total: failed queries (counter)
    Labels: query, error_type

Charts:
  - steamlens_charts_rendered_total, steamlens_chart_render_errors_total
    Labels: chart

DuckDB mirror:
  - duckdb_query_duration_seconds, duckdb_query_errors_total
    Labels: operation (, error_type)
  - duckdb_rows_mirrored (gauge)
*/
package metrics
