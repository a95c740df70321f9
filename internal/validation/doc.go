// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package validation checks query parameters with go-playground/validator v10.
//
// A single validator instance is built on first use and shared; it caches
// struct metadata, so it is cheap to call on every query. Two custom tags are
// registered:
//
//   - catalogcolumn: the value must be a canonical CSV header name
//   - platform: the value must be Mac, Windows or Linux (any case)
//
// Request structs for the analytics queries live in requests.go:
//
//	req := validation.YearWindow{YearMin: 2018, YearMax: 2022}
//	if err := validation.Validate(&req); err != nil {
//	    return err // errors.Is(err, validation.ErrInvalidRequest)
//	}
package validation
