// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
)

var nan = models.Stat(math.NaN())

func mean(xs []float64) models.Stat {
	if len(xs) == 0 {
		return nan
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return models.Stat(sum / float64(len(xs)))
}

func maxOf(xs []float64) models.Stat {
	if len(xs) == 0 {
		return nan
	}
	return models.Stat(slices.Max(xs))
}

// median averages the two middle values for even-length input.
func median(xs []float64) models.Stat {
	n := len(xs)
	if n == 0 {
		return nan
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if n%2 == 1 {
		return models.Stat(sorted[n/2])
	}
	return models.Stat((sorted[n/2-1] + sorted[n/2]) / 2)
}

// numbers collects the non-null values of a numeric column.
func numbers(t *catalog.Table, col catalog.Column) []float64 {
	out := make([]float64, 0, t.Len())
	t.Each(func(_ int, g *models.Game) {
		if x, ok := col.Value(g).Number(); ok {
			out = append(out, x)
		}
	})
	return out
}

// groupKey renders a cell as a group label. Nulls have no key.
func groupKey(v catalog.Value) (string, bool) {
	if v.Null {
		return "", false
	}
	switch v.Kind {
	case catalog.KindInt:
		return strconv.FormatInt(v.Int, 10), true
	case catalog.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), true
	case catalog.KindBool:
		return strconv.FormatBool(v.Bool), true
	case catalog.KindDate:
		return v.Time.Format(time.DateOnly), true
	default:
		return v.Str, true
	}
}
