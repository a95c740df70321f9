// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// ColumnTypes returns the DuckDB type of every games column in table order.
func (db *DB) ColumnTypes(ctx context.Context) (_ []models.ColumnType, err error) {
	defer db.track("column_types", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'games'
		ORDER BY ordinal_position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query column types: %w", err)
	}
	defer closeQuietly(rows)

	var out []models.ColumnType
	for rows.Next() {
		var ct models.ColumnType
		if err := rows.Scan(&ct.Column, &ct.Type); err != nil {
			return nil, fmt.Errorf("failed to scan column type: %w", err)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column types: %w", err)
	}
	return out, nil
}

// TopPublishers returns the k publishers with the most paid games. Ties keep
// the order in which publishers first appear in the catalog.
func (db *DB) TopPublishers(ctx context.Context, k int) (_ []models.GroupCount, err error) {
	defer db.track("top_publishers", time.Now(), &err)

	if err := validation.Validate(&validation.TopKRequest{GroupColumn: models.ColPublishers, K: k}); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT publishers, COUNT(*) AS games, MIN(row_idx) AS first_seen
		FROM games
		WHERE price > 0 AND publishers IS NOT NULL
		GROUP BY publishers
		ORDER BY games DESC, first_seen ASC
		LIMIT ?`, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query top publishers: %w", err)
	}
	defer closeQuietly(rows)

	out := []models.GroupCount{}
	for rows.Next() {
		var gc models.GroupCount
		var firstSeen int64
		if err := rows.Scan(&gc.Group, &gc.Count, &firstSeen); err != nil {
			return nil, fmt.Errorf("failed to scan publisher count: %w", err)
		}
		out = append(out, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publisher counts: %w", err)
	}
	return out, nil
}

// YearlyTrend counts, per release year in [yearMin, yearMax], the games whose
// genre contains genreSubstr and whose category equals category.
func (db *DB) YearlyTrend(ctx context.Context, genreSubstr, category string, yearMin, yearMax int) (_ []models.YearCount, err error) {
	defer db.track("yearly_trend", time.Now(), &err)

	if err := validation.Validate(&validation.YearWindow{YearMin: yearMin, YearMax: yearMax}); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT CAST(year(release_date) AS INTEGER) AS release_year, COUNT(*) AS games
		FROM games
		WHERE contains(genres, ?)
		  AND categories = ?
		  AND release_date IS NOT NULL
		  AND year(release_date) BETWEEN ? AND ?
		GROUP BY release_year
		ORDER BY release_year`, genreSubstr, category, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly trend: %w", err)
	}
	defer closeQuietly(rows)

	out := []models.YearCount{}
	for rows.Next() {
		var yc models.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan year count: %w", err)
		}
		out = append(out, yc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year counts: %w", err)
	}
	return out, nil
}

// PlatformGrowth reports the per-year release counts of games supporting
// platform inside [yearMin, yearMax]. Years without releases are zero-filled.
func (db *DB) PlatformGrowth(ctx context.Context, platform models.Platform, yearMin, yearMax int) (_ models.PlatformGrowth, err error) {
	defer db.track("platform_growth", time.Now(), &err)

	req := validation.PlatformWindow{
		Platform:   string(platform),
		YearWindow: validation.YearWindow{YearMin: yearMin, YearMax: yearMax},
	}
	if err := validation.Validate(&req); err != nil {
		return models.PlatformGrowth{}, err
	}
	column, err := platformColumn(platform)
	if err != nil {
		return models.PlatformGrowth{}, err
	}

	// column comes from a fixed whitelist.
	query := fmt.Sprintf(`
		SELECT CAST(year(release_date) AS INTEGER) AS release_year, COUNT(*) AS games
		FROM games
		WHERE %s
		  AND release_date IS NOT NULL
		  AND year(release_date) BETWEEN ? AND ?
		GROUP BY release_year`, column) //nolint:gosec // G201: whitelisted identifier

	rows, err := db.conn.QueryContext(ctx, query, yearMin, yearMax)
	if err != nil {
		return models.PlatformGrowth{}, fmt.Errorf("failed to query platform growth: %w", err)
	}
	defer closeQuietly(rows)

	counts := make([]models.YearCount, yearMax-yearMin+1)
	for i := range counts {
		counts[i].Year = yearMin + i
	}
	total := 0
	for rows.Next() {
		var year, n int
		if err := rows.Scan(&year, &n); err != nil {
			return models.PlatformGrowth{}, fmt.Errorf("failed to scan platform growth: %w", err)
		}
		counts[year-yearMin].Count = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return models.PlatformGrowth{}, fmt.Errorf("error iterating platform growth: %w", err)
	}

	res := models.PlatformGrowth{
		Platform: platform,
		YearMin:  yearMin,
		YearMax:  yearMax,
		Grew:     total > 0,
		Verdict:  analytics.VerdictNo,
		Total:    total,
		Counts:   counts,
	}
	if res.Grew {
		res.Verdict = analytics.VerdictYes
	}
	return res, nil
}

// LatestLoad returns the most recent catalog_loads entry, or sql.ErrNoRows
// when nothing has been mirrored yet.
func (db *DB) LatestLoad(ctx context.Context) (_ LoadResult, err error) {
	defer db.track("latest_load", time.Now(), &err)

	var id string
	var res LoadResult
	err = db.conn.QueryRowContext(ctx, `
		SELECT load_id, row_count FROM catalog_loads
		ORDER BY loaded_at DESC, rowid DESC LIMIT 1`).Scan(&id, &res.Rows)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoadResult{}, err
		}
		return LoadResult{}, fmt.Errorf("failed to query latest load: %w", err)
	}
	if err := res.LoadID.UnmarshalText([]byte(id)); err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse load id %q: %w", id, err)
	}
	return res, nil
}

func platformColumn(p models.Platform) (string, error) {
	switch p {
	case models.PlatformMac:
		return "mac", nil
	case models.PlatformWindows:
		return "windows", nil
	case models.PlatformLinux:
		return "linux", nil
	default:
		return "", fmt.Errorf("unsupported platform %q", p)
	}
}
