// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/steamlens/internal/models"
)

// Default fill values used by Treat and FillPublishers when none are configured.
const (
	DefaultMovieFill     = "No Movie"
	DefaultPublisherFill = "Unknown"
)

// UpperPublishers returns a copy of t with every present publisher name upper-cased.
// Null publishers stay null.
func (t *Table) UpperPublishers() (*Table, error) {
	if _, err := t.Column(models.ColPublishers); err != nil {
		return nil, err
	}
	return t.withRows(func(g *models.Game) {
		if g.Publishers.Valid {
			g.Publishers.String = strings.ToUpper(g.Publishers.String)
		}
	}), nil
}

// FillMissing returns a copy of t in which every null cell of column holds value.
// Non-null cells are unchanged. Numeric columns parse value first.
// Presence flags (HasMovies, HasScreenshots) keep their load-time values.
func (t *Table) FillMissing(column, value string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if !col.Nullable {
		return nil, fmt.Errorf("%w: %q is never null", ErrUnsupportedFill, column)
	}

	switch column {
	case models.ColPublishers, models.ColMovies, models.ColScreenshots:
		fill := models.NullString{String: value, Valid: true}
		return t.withRows(func(g *models.Game) {
			target := stringField(g, column)
			if !target.Valid {
				*target = fill
			}
		}), nil

	case models.ColMetacriticScore:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q needs an integer default, got %q", ErrUnsupportedFill, column, value)
		}
		return t.withRows(func(g *models.Game) {
			if !g.MetacriticScore.Valid {
				g.MetacriticScore = models.NullInt{Int64: n, Valid: true}
			}
		}), nil

	case models.ColUserScore, models.ColAveragePlaytime:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q needs a numeric default, got %q", ErrUnsupportedFill, column, value)
		}
		return t.withRows(func(g *models.Game) {
			target := &g.UserScore
			if column == models.ColAveragePlaytime {
				target = &g.AveragePlaytime
			}
			if !target.Valid {
				*target = models.NullFloat{Float64: f, Valid: true}
			}
		}), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFill, column)
	}
}

func stringField(g *models.Game, column string) *models.NullString {
	switch column {
	case models.ColMovies:
		return &g.Movies
	case models.ColScreenshots:
		return &g.Screenshots
	default:
		return &g.Publishers
	}
}

// FillPublishers replaces missing publishers with sentinel.
// An empty sentinel falls back to DefaultPublisherFill.
func (t *Table) FillPublishers(sentinel string) (*Table, error) {
	if sentinel == "" {
		sentinel = DefaultPublisherFill
	}
	return t.FillMissing(models.ColPublishers, sentinel)
}

// Treat upper-cases publisher names and fills missing movie links with movieFill
// (DefaultMovieFill when empty).
func (t *Table) Treat(movieFill string) (*Table, error) {
	if movieFill == "" {
		movieFill = DefaultMovieFill
	}
	upper, err := t.UpperPublishers()
	if err != nil {
		return nil, err
	}
	return upper.FillMissing(models.ColMovies, movieFill)
}

// CoerceNumeric returns a copy of t whose column is tagged numeric.
// Cells that failed to parse at load time are already null, so only the tag changes:
// a column that held unparseable or empty cells becomes float64, as NaN promotion would.
func (t *Table) CoerceNumeric(column string) (*Table, error) {
	col, err := t.NumericColumn(column)
	if err != nil {
		return nil, err
	}
	out := t.derive(t.Rows())
	if out.types[column] != col.Kind {
		out.types[column] = KindFloat
	}
	return out, nil
}

// CoerceDates returns a copy of t whose release date column is tagged date.
// Unparseable dates remain invalid and are excluded by windowed queries.
func (t *Table) CoerceDates() (*Table, error) {
	if _, err := t.Column(models.ColReleaseDate); err != nil {
		return nil, err
	}
	out := t.derive(t.Rows())
	out.types[models.ColReleaseDate] = KindDate
	return out, nil
}
