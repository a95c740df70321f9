// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tomtom215/steamlens/internal/models"
)

// Table is an immutable, ordered snapshot of catalog rows.
// The zero value is an empty table with no columns.
type Table struct {
	rows    []models.Game
	columns []string        // present columns, header order
	types   map[string]Kind // storage type tag per present column
}

// NewTable builds a table from rows. Every registered column is treated as present
// and tagged with its declared kind, except the release date which stays "string"
// until CoerceDates, matching what the loader produces for a clean file.
func NewTable(rows []models.Game) *Table {
	types := make(map[string]Kind, len(registry))
	for _, c := range registry {
		types[c.Name] = c.Kind
	}
	types[models.ColReleaseDate] = KindString
	return &Table{
		rows:    slices.Clone(rows),
		columns: KnownColumns(),
		types:   types,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) models.Game {
	return t.rows[i]
}

// Rows returns a copy of every row.
func (t *Table) Rows() []models.Game {
	if t == nil {
		return nil
	}
	return slices.Clone(t.rows)
}

// Each calls fn for every row in order. fn must not modify g.
func (t *Table) Each(fn func(i int, g *models.Game)) {
	if t == nil {
		return
	}
	for i := range t.rows {
		fn(i, &t.rows[i])
	}
}

// AppIDs returns the identifying key of every row in order.
func (t *Table) AppIDs() []int64 {
	ids := make([]int64, t.Len())
	t.Each(func(i int, g *models.Game) { ids[i] = g.AppID })
	return ids
}

// Columns returns the names of the columns present in the table, in header order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.columns)
}

// HasColumn reports whether name is present in the table.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.types[name]
	return ok
}

// Column resolves a column that is present in the table.
func (t *Table) Column(name string) (Column, error) {
	if !t.HasColumn(name) {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	col, _ := Lookup(name)
	return col, nil
}

// NumericColumn resolves a present column and checks that it can be aggregated.
func (t *Table) NumericColumn(name string) (Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return Column{}, err
	}
	if !col.Kind.IsNumeric() {
		return Column{}, fmt.Errorf("%w: %q is %s", ErrNotNumeric, name, col.Kind)
	}
	return col, nil
}

// ColumnTypes returns the storage type tag of each requested column, in request order.
// It fails with ErrUnknownColumn on the first name that is not present.
func (t *Table) ColumnTypes(columns ...string) ([]models.ColumnType, error) {
	out := make([]models.ColumnType, 0, len(columns))
	for _, name := range columns {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		out = append(out, models.ColumnType{Column: name, Type: string(t.types[name])})
	}
	return out, nil
}

// Filter returns a new table holding the rows for which pred is true.
// A nil predicate keeps every row.
func (t *Table) Filter(pred Predicate) *Table {
	if pred == nil {
		return t.derive(slices.Clone(t.rows))
	}
	rows := make([]models.Game, 0, len(t.rows))
	for i := range t.rows {
		if pred(&t.rows[i]) {
			rows = append(rows, t.rows[i])
		}
	}
	return t.derive(rows)
}

// Take returns a new table holding the rows at the given indices, in that order.
func (t *Table) Take(indices []int) *Table {
	rows := make([]models.Game, len(indices))
	for i, idx := range indices {
		rows[i] = t.rows[idx]
	}
	return t.derive(rows)
}

// Head returns a new table holding at most the first n rows.
func (t *Table) Head(n int) *Table {
	n = max(0, min(n, len(t.rows)))
	return t.derive(slices.Clone(t.rows[:n]))
}

// derive builds a sibling table that shares the column layout of t.
// rows must not alias t.rows.
func (t *Table) derive(rows []models.Game) *Table {
	return &Table{
		rows:    rows,
		columns: slices.Clone(t.columns),
		types:   maps.Clone(t.types),
	}
}

// withRows copies t and applies fn to every row of the copy.
func (t *Table) withRows(fn func(g *models.Game)) *Table {
	out := t.derive(slices.Clone(t.rows))
	for i := range out.rows {
		fn(&out.rows[i])
	}
	return out
}
