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

// Kind is the storage type tag of a column.
type Kind string

const (
	KindInt    Kind = "int64"
	KindFloat  Kind = "float64"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindDate   Kind = "date"
)

// IsNumeric reports whether values of this kind can be aggregated.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Value is a single cell read through the column registry.
type Value struct {
	Kind  Kind
	Null  bool
	Int   int64
	Float float64
	Str   string
	Bool  bool
	Time  time.Time
}

// Number returns the cell as float64. ok is false for nulls and non-numeric cells.
func (v Value) Number() (float64, bool) {
	if v.Null {
		return 0, false
	}
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Text returns the cell as a string. ok is false for nulls and non-string cells.
func (v Value) Text() (string, bool) {
	if v.Null || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Compare orders two non-null values of the same kind.
// It returns -1, 0 or +1.
func Compare(a, b Value) int {
	switch a.Kind {
	case KindInt:
		return cmpOrdered(a.Int, b.Int)
	case KindFloat:
		return cmpOrdered(a.Float, b.Float)
	case KindBool:
		switch {
		case a.Bool == b.Bool:
			return 0
		case !a.Bool:
			return -1
		default:
			return 1
		}
	case KindDate:
		return a.Time.Compare(b.Time)
	default:
		return strings.Compare(a.Str, b.Str)
	}
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Column describes how to read one catalog column from a row.
type Column struct {
	Name     string
	Kind     Kind // declared kind once fully coerced
	Nullable bool
	Required bool
	get      func(g *models.Game) Value
}

// Value reads the column from g.
func (c Column) Value(g *models.Game) Value {
	return c.get(g)
}

func intValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

func nullInt(v models.NullInt) Value {
	return Value{Kind: KindInt, Int: v.Int64, Null: !v.Valid}
}

func floatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

func nullFloat(v models.NullFloat) Value {
	return Value{Kind: KindFloat, Float: v.Float64, Null: !v.Valid}
}

func strValue(s string) Value { return Value{Kind: KindString, Str: s} }

func nullStr(v models.NullString) Value {
	return Value{Kind: KindString, Str: v.String, Null: !v.Valid}
}

func boolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// registry lists every column the loader understands, in canonical order.
var registry = []Column{
	{Name: models.ColAppID, Kind: KindInt, Required: true, get: func(g *models.Game) Value { return intValue(g.AppID) }},
	{Name: models.ColName, Kind: KindString, Required: true, get: func(g *models.Game) Value { return strValue(g.Name) }},
	{Name: models.ColReleaseDate, Kind: KindDate, Nullable: true, get: func(g *models.Game) Value {
		return Value{Kind: KindDate, Time: g.ReleaseDate.Time, Null: !g.ReleaseDate.Valid}
	}},
	{Name: models.ColPrice, Kind: KindFloat, get: func(g *models.Game) Value { return floatValue(g.Price) }},
	{Name: models.ColDLCCount, Kind: KindInt, get: func(g *models.Game) Value { return intValue(g.DLCCount) }},
	{Name: models.ColWindows, Kind: KindBool, get: func(g *models.Game) Value { return boolValue(g.Windows) }},
	{Name: models.ColMac, Kind: KindBool, get: func(g *models.Game) Value { return boolValue(g.Mac) }},
	{Name: models.ColLinux, Kind: KindBool, get: func(g *models.Game) Value { return boolValue(g.Linux) }},
	{Name: models.ColMetacriticScore, Kind: KindInt, Nullable: true, get: func(g *models.Game) Value { return nullInt(g.MetacriticScore) }},
	{Name: models.ColUserScore, Kind: KindFloat, Nullable: true, get: func(g *models.Game) Value { return nullFloat(g.UserScore) }},
	{Name: models.ColPositive, Kind: KindInt, get: func(g *models.Game) Value { return intValue(g.Positive) }},
	{Name: models.ColNegative, Kind: KindInt, get: func(g *models.Game) Value { return intValue(g.Negative) }},
	{Name: models.ColAveragePlaytime, Kind: KindFloat, Nullable: true, get: func(g *models.Game) Value { return nullFloat(g.AveragePlaytime) }},
	{Name: models.ColPublishers, Kind: KindString, Nullable: true, get: func(g *models.Game) Value { return nullStr(g.Publishers) }},
	{Name: models.ColGenres, Kind: KindString, get: func(g *models.Game) Value { return strValue(g.Genres) }},
	{Name: models.ColCategories, Kind: KindString, get: func(g *models.Game) Value { return strValue(g.Categories) }},
	{Name: models.ColMovies, Kind: KindString, Nullable: true, get: func(g *models.Game) Value { return nullStr(g.Movies) }},
	{Name: models.ColScreenshots, Kind: KindString, Nullable: true, get: func(g *models.Game) Value { return nullStr(g.Screenshots) }},
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, c := range registry {
		idx[c.Name] = i
	}
	return idx
}()

// Lookup returns the registered column with the given name.
func Lookup(name string) (Column, bool) {
	i, ok := registryIndex[name]
	if !ok {
		return Column{}, false
	}
	return registry[i], true
}

// KnownColumns returns the names of every column the loader understands.
func KnownColumns() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}
	return names
}
