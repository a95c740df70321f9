// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package logging provides the zerolog-based structured logger used across Steamlens.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", path).Msg("Loading catalog")
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Int("rows", n).Msg("Catalog loaded")
//
// # Configuration
//
// Environment Variables (mapped through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error, disabled (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging
