// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"math"
	"strconv"
)

// Stat is a statistic that may be undefined (NaN). It encodes NaN and
// infinities as JSON null.
type Stat float64

// IsNaN reports whether the statistic is undefined.
func (s Stat) IsNaN() bool {
	return math.IsNaN(float64(s))
}

// MarshalJSON implements json.Marshaler.
func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// ColumnType pairs a column name with its storage type tag.
type ColumnType struct {
	Column string `json:"column"`
	Type   string `json:"type"`
}

// NumericSummary holds the mean and max of one numeric column.
// Both are NaN when computed over an empty subset.
type NumericSummary struct {
	Mean Stat `json:"mean"`
	Max  Stat `json:"max"`
}

// GroupSummary holds mean and median of a value column for one group.
type GroupSummary struct {
	Group  string `json:"group"`
	Mean   Stat   `json:"mean"`
	Median Stat   `json:"median"`
	Count  int    `json:"count"`
}

// GroupCount is the number of rows carrying a group value.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// GroupValue is a single statistic keyed by group.
type GroupValue struct {
	Group string `json:"group"`
	Value Stat   `json:"value"`
}

// YearCount is the number of rows released in a calendar year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// PlatformGrowth answers whether a platform had releases inside a year window.
type PlatformGrowth struct {
	Platform Platform    `json:"platform"`
	YearMin  int         `json:"year_min"`
	YearMax  int         `json:"year_max"`
	Grew     bool        `json:"grew"`
	Verdict  string      `json:"verdict"` // "yes" or "no"
	Total    int         `json:"total"`
	Counts   []YearCount `json:"counts"`
}

// CountFor returns the count recorded for year, or 0 when absent.
func (p PlatformGrowth) CountFor(year int) int {
	for _, c := range p.Counts {
		if c.Year == year {
			return c.Count
		}
	}
	return 0
}

// PlatformShare is one slice of the operating system distribution.
type PlatformShare struct {
	Platform Platform `json:"platform"`
	Votes    int      `json:"votes"`
	Percent  Stat     `json:"percent"`
}

// PlatformVotes is the plain number of games supporting a platform.
type PlatformVotes struct {
	Platform Platform `json:"platform"`
	Votes    int      `json:"votes"`
}

// ScoreEntry is the projection returned by the user score ranking.
type ScoreEntry struct {
	AppID     int64   `json:"app_id"`
	Name      string  `json:"name"`
	UserScore float64 `json:"user_score"`
}
