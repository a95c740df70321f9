// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package analytics implements the catalog queries: rankings, group
// statistics, windowed release trends and the platform distribution behind
// the operating system charts.
//
// Every query reads a *catalog.Table and never modifies it. Query parameters
// are checked with the validation package first, so a bad window or a
// negative limit fails with validation.ErrInvalidRequest before any row is
// read. Column names are resolved against the table and fail with
// catalog.ErrUnknownColumn or catalog.ErrNotNumeric.
//
// Statistics over an empty subset are NaN, never zero. Results carry them as
// models.Stat so they encode as JSON null.
//
// Each query records its duration in steamlens_query_duration_seconds and
// counts failures in steamlens_query_errors_total.
package analytics
