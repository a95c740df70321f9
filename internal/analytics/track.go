// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// track records the outcome of a query. Call it deferred with the address of
// the named error result.
func track(query string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	elapsed := time.Since(start)
	metrics.RecordQuery(query, elapsed, err)
	if err != nil {
		logging.Debug().Err(err).Str("query", query).Msg("Query rejected")
		return
	}
	logging.Debug().Str("query", query).Dur("duration", elapsed).Msg("Query completed")
}
