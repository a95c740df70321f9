// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import "errors"

var (
	// ErrLoad is returned when the catalog file cannot be read or parsed.
	ErrLoad = errors.New("catalog load failed")

	// ErrUnknownColumn is returned when a column name is not part of the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNotNumeric is returned when a numeric operation targets a non-numeric column.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrUnsupportedFill is returned when FillMissing targets a column that cannot hold nulls
	// or the default value cannot be stored in the column.
	ErrUnsupportedFill = errors.New("column does not support fill")
)
