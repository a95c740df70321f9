// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"strings"
	"time"

	"github.com/tomtom215/steamlens/internal/models"
)

// releaseDateLayouts are tried in order. Store exports use "Oct 21, 2008";
// the rest cover month-only entries and ISO dumps.
var releaseDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan, 2006",
	"2 Jan 2006",
	"Jan 2006",
	"January 2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// ParseReleaseDate coerces a raw release date. Unparseable or empty input
// yields an invalid NullDate rather than an error.
func ParseReleaseDate(raw string) models.NullDate {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.NullDate{}
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.NullDate{Time: t, Valid: true}
		}
	}
	return models.NullDate{}
}
