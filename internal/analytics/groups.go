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

// GroupStatsResult holds the statistics of a filtered subset together with the
// subset itself and its media presence indicators.
//
// HasMovies, HasScreenshots and MediaTotal are aligned with the subset rows.
// They come from the load-time presence flags, so earlier fills do not affect them.
type GroupStatsResult struct {
	Columns        []string                         `json:"columns"`
	Stats          map[string]models.NumericSummary `json:"stats"`
	Count          int                              `json:"count"`
	AppIDs         []int64                          `json:"app_ids"`
	HasMovies      []int                            `json:"has_movies"`
	HasScreenshots []int                            `json:"has_screenshots"`
	MediaTotal     []int                            `json:"media_total"`
	Subset         *catalog.Table                   `json:"-"`
}

// GroupStats filters t with pred and computes mean and max of each column over
// the subset. Null cells are skipped; an empty subset yields NaN for both.
func GroupStats(t *catalog.Table, pred catalog.Predicate, columns ...string) (_ GroupStatsResult, err error) {
	defer track("group_stats", time.Now(), &err)

	cols := make([]catalog.Column, len(columns))
	for i, name := range columns {
		col, err := t.NumericColumn(name)
		if err != nil {
			return GroupStatsResult{}, err
		}
		cols[i] = col
	}

	subset := t.Filter(pred)
	res := GroupStatsResult{
		Columns:        slices.Clone(columns),
		Stats:          make(map[string]models.NumericSummary, len(cols)),
		Count:          subset.Len(),
		AppIDs:         subset.AppIDs(),
		HasMovies:      make([]int, subset.Len()),
		HasScreenshots: make([]int, subset.Len()),
		MediaTotal:     make([]int, subset.Len()),
		Subset:         subset,
	}
	for _, col := range cols {
		xs := numbers(subset, col)
		res.Stats[col.Name] = models.NumericSummary{Mean: mean(xs), Max: maxOf(xs)}
	}
	subset.Each(func(i int, g *models.Game) {
		res.HasMovies[i] = boolInt(g.HasMovies)
		res.HasScreenshots[i] = boolInt(g.HasScreenshots)
		res.MediaTotal[i] = res.HasMovies[i] + res.HasScreenshots[i]
	})
	return res, nil
}

// RPGStats summarizes DLC count and review counts of games whose genre is exactly "RPG".
func RPGStats(t *catalog.Table) (GroupStatsResult, error) {
	return GroupStats(t, catalog.GenreEquals("RPG"), models.ColDLCCount, models.ColPositive, models.ColNegative)
}

// GroupedMeanMedian computes mean and median of valueColumn for each group value,
// over the rows accepted by pred. Results follow the order of values; a nil
// values slice means every group present in the filtered rows, first seen first.
// A group with no rows yields NaN statistics and a zero count.
func GroupedMeanMedian(t *catalog.Table, groupColumn string, values []string, pred catalog.Predicate, valueColumn string) (_ []models.GroupSummary, err error) {
	defer track("grouped_mean_median", time.Now(), &err)

	gcol, vcol, err := groupColumns(t, groupColumn, valueColumn)
	if err != nil {
		return nil, err
	}

	subset := t.Filter(pred)
	buckets := make(map[string][]float64)
	var seen []string
	subset.Each(func(_ int, g *models.Game) {
		key, ok := groupKey(gcol.Value(g))
		if !ok {
			return
		}
		xs, known := buckets[key]
		if !known {
			seen = append(seen, key)
		}
		if x, ok := vcol.Value(g).Number(); ok {
			xs = append(xs, x)
		}
		buckets[key] = xs
	})

	if values == nil {
		values = seen
	}
	out := make([]models.GroupSummary, len(values))
	for i, v := range values {
		xs := buckets[v]
		out[i] = models.GroupSummary{Group: v, Mean: mean(xs), Median: median(xs), Count: len(xs)}
	}
	return out, nil
}

// PublisherPositiveSummary is GroupedMeanMedian of positive reviews per publisher
// over paid games.
func PublisherPositiveSummary(t *catalog.Table, publishers []string) ([]models.GroupSummary, error) {
	return GroupedMeanMedian(t, models.ColPublishers, publishers, catalog.PricePositive(), models.ColPositive)
}

// TopKGroups counts rows per value of groupColumn among rows accepted by pred
// and returns the k most frequent, count descending. Equal counts keep the
// order in which the groups were first encountered. Null group values are ignored.
func TopKGroups(t *catalog.Table, pred catalog.Predicate, groupColumn string, k int) (_ []models.GroupCount, err error) {
	defer track("top_k_groups", time.Now(), &err)

	gcol, err := t.Column(groupColumn)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(&validation.TopKRequest{GroupColumn: groupColumn, K: k}); err != nil {
		return nil, err
	}

	pos := make(map[string]int)
	var counts []models.GroupCount
	t.Filter(pred).Each(func(_ int, g *models.Game) {
		key, ok := groupKey(gcol.Value(g))
		if !ok {
			return
		}
		i, known := pos[key]
		if !known {
			i = len(counts)
			pos[key] = i
			counts = append(counts, models.GroupCount{Group: key})
		}
		counts[i].Count++
	})

	slices.SortStableFunc(counts, func(a, b models.GroupCount) int {
		return b.Count - a.Count
	})
	return counts[:min(k, len(counts))], nil
}

// TopPublishers returns the k publishers with the most paid games.
func TopPublishers(t *catalog.Table, k int) ([]models.GroupCount, error) {
	return TopKGroups(t, catalog.PricePositive(), models.ColPublishers, k)
}

// MeanBy computes the mean of valueColumn per value of groupColumn.
// Groups are returned in ascending key order. Null values are skipped, so a
// group whose values are all null has a NaN mean. Rows with a null key are dropped.
func MeanBy(t *catalog.Table, groupColumn, valueColumn string) (_ []models.GroupValue, err error) {
	defer track("mean_by", time.Now(), &err)

	gcol, vcol, err := groupColumns(t, groupColumn, valueColumn)
	if err != nil {
		return nil, err
	}

	type group struct {
		key  catalog.Value
		name string
		xs   []float64
	}
	byName := make(map[string]*group)
	var groups []*group
	t.Each(func(_ int, g *models.Game) {
		kv := gcol.Value(g)
		name, ok := groupKey(kv)
		if !ok {
			return
		}
		grp, known := byName[name]
		if !known {
			grp = &group{key: kv, name: name}
			byName[name] = grp
			groups = append(groups, grp)
		}
		if x, ok := vcol.Value(g).Number(); ok {
			grp.xs = append(grp.xs, x)
		}
	})

	slices.SortStableFunc(groups, func(a, b *group) int {
		return catalog.Compare(a.key, b.key)
	})
	out := make([]models.GroupValue, len(groups))
	for i, grp := range groups {
		out[i] = models.GroupValue{Group: grp.name, Value: mean(grp.xs)}
	}
	return out, nil
}

// PlaytimeByGame is MeanBy of average playtime per game name.
func PlaytimeByGame(t *catalog.Table) ([]models.GroupValue, error) {
	return MeanBy(t, models.ColName, models.ColAveragePlaytime)
}

func groupColumns(t *catalog.Table, groupColumn, valueColumn string) (catalog.Column, catalog.Column, error) {
	gcol, err := t.Column(groupColumn)
	if err != nil {
		return catalog.Column{}, catalog.Column{}, err
	}
	vcol, err := t.NumericColumn(valueColumn)
	if err != nil {
		return catalog.Column{}, catalog.Column{}, err
	}
	if err := validation.Validate(&validation.GroupRequest{GroupColumn: groupColumn, ValueColumn: valueColumn}); err != nil {
		return catalog.Column{}, catalog.Column{}, err
	}
	return gcol, vcol, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
