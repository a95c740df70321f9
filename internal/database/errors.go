// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"io"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and ignores any error.
// Use it in error paths where Close errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// track records a DuckDB operation. Call it deferred with the address of the
// named error result.
func (db *DB) track(operation string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	elapsed := time.Since(start)
	metrics.RecordDBQuery(operation, elapsed, err)
	if err != nil {
		logging.Warn().Err(err).Str("operation", operation).Msg("DuckDB operation failed")
		return
	}
	logging.Debug().Str("operation", operation).Dur("duration", elapsed).Msg("DuckDB operation completed")
}
