// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// ctxCheckInterval is how many rows are parsed between context checks.
const ctxCheckInterval = 1024

// LoadFile reads the catalog CSV at path.
// A missing file fails with an error matching both ErrLoad and fs.ErrNotExist.
func LoadFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		metrics.LoadErrors.Inc()
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrLoad, path, err)
	}
	defer closeQuietly(f)

	tbl, err := Load(ctx, bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// Load parses catalog CSV data from r.
//
// The header must contain AppID and Name. Unknown columns are ignored; known
// columns missing from the header are simply absent from the table. Rows with
// more cells than the header, an unparseable AppID, or a duplicate AppID make
// the whole load fail.
func Load(ctx context.Context, r io.Reader) (*Table, error) {
	start := time.Now()
	tbl, skipped, err := parse(ctx, r)
	if err != nil {
		metrics.LoadErrors.Inc()
		return nil, err
	}
	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.RowsLoaded.Set(float64(tbl.Len()))

	logging.Ctx(ctx).Info().
		Int("rows", tbl.Len()).
		Int("columns", len(tbl.columns)).
		Strs("ignored_columns", skipped).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return tbl, nil
}

// parser carries per-load state: header mapping and storage type tags.
type parser struct {
	index map[string]int // column name -> position in record
	types map[string]Kind
}

func parse(ctx context.Context, r io.Reader) (*Table, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: empty file", ErrLoad)
		}
		return nil, nil, fmt.Errorf("%w: failed to read header: %w", ErrLoad, err)
	}

	p := &parser{
		index: make(map[string]int, len(header)),
		types: make(map[string]Kind, len(registry)),
	}
	var columns, skipped []string
	width := len(header)
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		col, ok := Lookup(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		if _, dup := p.index[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate header column %q", ErrLoad, name)
		}
		p.index[name] = i
		columns = append(columns, name)
		p.types[name] = col.Kind
	}
	for _, c := range registry {
		if c.Required {
			if _, ok := p.index[c.Name]; !ok {
				return nil, nil, fmt.Errorf("%w: missing required column %q", ErrLoad, c.Name)
			}
		}
	}
	if _, ok := p.types[models.ColReleaseDate]; ok {
		p.types[models.ColReleaseDate] = KindString
	}

	var rows []models.Game
	seen := make(map[int64]int)
	for n := 1; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
			}
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) > width {
			return nil, nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrLoad, line, len(record), width)
		}

		g, err := p.row(record)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %w", ErrLoad, line, err)
		}
		if prev, dup := seen[g.AppID]; dup {
			return nil, nil, fmt.Errorf("%w: line %d: duplicate AppID %d (first seen on line %d)", ErrLoad, line, g.AppID, prev)
		}
		seen[g.AppID] = line
		rows = append(rows, g)
	}

	return &Table{rows: rows, columns: columns, types: p.types}, skipped, nil
}

// cell returns the trimmed cell for column name and whether the column is in the file.
// Short rows yield empty cells.
func (p *parser) cell(record []string, name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	if i >= len(record) {
		return "", true
	}
	return strings.TrimSpace(record[i]), true
}

func (p *parser) row(record []string) (models.Game, error) {
	var g models.Game

	raw, _ := p.cell(record, models.ColAppID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return g, fmt.Errorf("invalid AppID %q", raw)
	}
	g.AppID = id
	g.Name, _ = p.cell(record, models.ColName)
	g.Genres, _ = p.cell(record, models.ColGenres)
	g.Categories, _ = p.cell(record, models.ColCategories)
	g.Publishers = p.nullString(record, models.ColPublishers)
	g.Movies = p.nullString(record, models.ColMovies)
	g.Screenshots = p.nullString(record, models.ColScreenshots)
	g.HasMovies = g.Movies.Valid
	g.HasScreenshots = g.Screenshots.Valid

	g.Mac = p.boolean(record, models.ColMac)
	g.Windows = p.boolean(record, models.ColWindows)
	g.Linux = p.boolean(record, models.ColLinux)

	if s, ok := p.cell(record, models.ColReleaseDate); ok {
		g.ReleaseDateRaw = s
		g.ReleaseDate = ParseReleaseDate(s)
	}

	g.Price = p.float(record, models.ColPrice).Float64
	g.UserScore = p.float(record, models.ColUserScore)
	g.AveragePlaytime = p.float(record, models.ColAveragePlaytime)

	g.DLCCount = p.integer(record, models.ColDLCCount).Int64
	g.Positive = p.integer(record, models.ColPositive).Int64
	g.Negative = p.integer(record, models.ColNegative).Int64
	g.MetacriticScore = p.integer(record, models.ColMetacriticScore)

	return g, nil
}

func (p *parser) nullString(record []string, name string) models.NullString {
	s, ok := p.cell(record, name)
	if !ok || s == "" {
		return models.NullString{}
	}
	return models.NullString{String: s, Valid: true}
}

func (p *parser) boolean(record []string, name string) bool {
	s, ok := p.cell(record, name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		p.degrade(name, KindString)
		return false
	}
	return b
}

func (p *parser) float(record []string, name string) models.NullFloat {
	s, ok := p.cell(record, name)
	if !ok || s == "" {
		return models.NullFloat{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.degrade(name, KindString)
		return models.NullFloat{}
	}
	if math.IsNaN(f) {
		return models.NullFloat{}
	}
	return models.NullFloat{Float64: f, Valid: true}
}

// integer parses an integer cell. Integral floats ("12.0") are accepted and
// tag the column float64; empty cells promote the tag to float64 as well.
func (p *parser) integer(record []string, name string) models.NullInt {
	s, ok := p.cell(record, name)
	if !ok {
		return models.NullInt{}
	}
	if s == "" {
		p.degrade(name, KindFloat)
		return models.NullInt{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NullInt{Int64: n, Valid: true}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		p.degrade(name, KindFloat)
		return models.NullInt{Int64: int64(f), Valid: true}
	}
	p.degrade(name, KindString)
	return models.NullInt{}
}

var kindRank = map[Kind]int{KindBool: 0, KindInt: 1, KindFloat: 2, KindDate: 3, KindString: 4}

// degrade widens the storage tag of a column; it never narrows it.
func (p *parser) degrade(name string, to Kind) {
	if kindRank[to] > kindRank[p.types[name]] {
		p.types[name] = to
	}
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close() // read-only file, nothing to flush
	}
}
