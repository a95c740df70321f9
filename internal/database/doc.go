// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package database mirrors a treated catalog into DuckDB and answers the
aggregate queries in SQL.

The mirror is optional. The in-memory analytics package stays the source of
truth, and every query here returns exactly what its in-memory counterpart
returns for the same snapshot. That parity is what the report uses to
cross-check the two engines.

# Schema

	games          one row per catalog row, row_idx preserving CSV order
	catalog_loads  one row per LoadCatalog call (load_id, loaded_at, row_count)

Nullable catalog fields map to SQL NULL. Dates that failed to parse are
stored as NULL in release_date while release_date_raw keeps the source text.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if _, err := db.LoadCatalog(ctx, table); err != nil {
	    return err
	}
	top, err := db.TopPublishers(ctx, 5)

# Connection Settings

The connection string carries threads, max_memory and
preserve_insertion_order from DatabaseConfig. Extension auto-install is
disabled; the mirror uses only core DuckDB functions.

# Metrics

Every operation records duckdb_query_duration_seconds and, on failure,
duckdb_query_errors_total. LoadCatalog sets duckdb_rows_mirrored.
*/
package database
