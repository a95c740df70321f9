// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"slices"
	"time"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// SortKey is one key of a multi-key ranking.
type SortKey struct {
	Column     string
	Descending bool
}

// TopNBy stable-sorts t by keys and returns the first n rows.
//
// Each key sorts in its own direction. Null values sort after every present
// value in either direction. Rows equal on every key keep their table order.
func TopNBy(t *catalog.Table, keys []SortKey, n int) (_ *catalog.Table, err error) {
	defer track("top_n_by", time.Now(), &err)

	req := validation.MultiKeyRequest{N: n, Keys: make([]validation.SortKeyRequest, len(keys))}
	cols := make([]catalog.Column, len(keys))
	for i, k := range keys {
		col, err := t.Column(k.Column)
		if err != nil {
			return nil, err
		}
		cols[i] = col
		req.Keys[i].Column = k.Column
	}
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	rows := t.Rows()
	order := indices(len(rows))
	slices.SortStableFunc(order, func(a, b int) int {
		for i, k := range keys {
			if c := compareNullsLast(cols[i].Value(&rows[a]), cols[i].Value(&rows[b]), k.Descending); c != 0 {
				return c
			}
		}
		return 0
	})

	return t.Take(order[:min(n, len(order))]), nil
}

// TopN returns the n rows with the greatest values of a numeric column,
// descending. Rows where the column is null are excluded; ties keep table order.
func TopN(t *catalog.Table, column string, n int) (_ *catalog.Table, err error) {
	defer track("top_n", time.Now(), &err)

	col, err := t.NumericColumn(column)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(&validation.TopNRequest{Column: column, N: n}); err != nil {
		return nil, err
	}

	order := make([]int, 0, t.Len())
	values := make([]float64, t.Len())
	t.Each(func(i int, g *models.Game) {
		if x, ok := col.Value(g).Number(); ok {
			values[i] = x
			order = append(order, i)
		}
	})
	slices.SortStableFunc(order, func(a, b int) int {
		return cmpFloat(values[b], values[a])
	})

	return t.Take(order[:min(n, len(order))]), nil
}

// TopRated ranks by Metacritic score, then release date, both descending.
func TopRated(t *catalog.Table, n int) (*catalog.Table, error) {
	return TopNBy(t, []SortKey{
		{Column: models.ColMetacriticScore, Descending: true},
		{Column: models.ColReleaseDate, Descending: true},
	}, n)
}

// TopUserScores returns the n best user scores projected to id, name and score.
func TopUserScores(t *catalog.Table, n int) ([]models.ScoreEntry, error) {
	top, err := TopN(t, models.ColUserScore, n)
	if err != nil {
		return nil, err
	}
	out := make([]models.ScoreEntry, 0, top.Len())
	top.Each(func(_ int, g *models.Game) {
		out = append(out, models.ScoreEntry{AppID: g.AppID, Name: g.Name, UserScore: g.UserScore.Float64})
	})
	return out, nil
}

// TopPlaytime returns the n games with the longest average playtime.
func TopPlaytime(t *catalog.Table, n int) (*catalog.Table, error) {
	return TopN(t, models.ColAveragePlaytime, n)
}

func compareNullsLast(a, b catalog.Value, descending bool) int {
	switch {
	case a.Null && b.Null:
		return 0
	case a.Null:
		return 1
	case b.Null:
		return -1
	}
	c := catalog.Compare(a, b)
	if descending {
		return -c
	}
	return c
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
