// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"strings"

	"github.com/tomtom215/steamlens/internal/models"
)

// Predicate selects rows. Predicates must not modify the row they are given.
type Predicate func(g *models.Game) bool

// All matches every row.
func All() Predicate {
	return func(*models.Game) bool { return true }
}

// And matches rows accepted by every predicate. Nil predicates are skipped.
func And(preds ...Predicate) Predicate {
	return func(g *models.Game) bool {
		for _, p := range preds {
			if p != nil && !p(g) {
				return false
			}
		}
		return true
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(g *models.Game) bool { return !p(g) }
}

// GenreEquals matches rows whose genre field is exactly genre.
func GenreEquals(genre string) Predicate {
	return func(g *models.Game) bool { return g.Genres == genre }
}

// GenreContains matches rows whose genre field contains substr (case-sensitive).
func GenreContains(substr string) Predicate {
	return func(g *models.Game) bool { return strings.Contains(g.Genres, substr) }
}

// CategoryEquals matches rows whose category field is exactly category.
func CategoryEquals(category string) Predicate {
	return func(g *models.Game) bool { return g.Categories == category }
}

// PublisherEquals matches rows whose publisher is present and equal to name.
func PublisherEquals(name string) Predicate {
	return func(g *models.Game) bool { return g.Publishers.Valid && g.Publishers.String == name }
}

// Supports matches rows flagged as running on platform p.
func Supports(p models.Platform) Predicate {
	return func(g *models.Game) bool { return g.Supports(p) }
}

// AnyPlatform matches rows supporting at least one platform.
func AnyPlatform() Predicate {
	return func(g *models.Game) bool { return g.PlatformCount() > 0 }
}

// PricePositive matches paid games.
func PricePositive() Predicate {
	return func(g *models.Game) bool { return g.Price > 0 }
}

// HasReleaseDate matches rows whose release date parsed.
func HasReleaseDate() Predicate {
	return func(g *models.Game) bool { return g.ReleaseDate.Valid }
}

// ReleasedBetween matches rows with a valid release date whose year lies in
// [yearMin, yearMax], both ends inclusive.
func ReleasedBetween(yearMin, yearMax int) Predicate {
	return func(g *models.Game) bool {
		y, ok := g.ReleaseYear()
		return ok && y >= yearMin && y <= yearMax
	}
}
