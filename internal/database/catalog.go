// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

const insertGame = `INSERT INTO games (
	row_idx, app_id, name, publishers, genres, categories,
	mac, windows, linux, release_date_raw, release_date,
	price, positive, negative, metacritic_score, user_score,
	dlc_count, average_playtime_forever, movies, screenshots,
	has_movies, has_screenshots
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// LoadResult describes one mirrored snapshot.
type LoadResult struct {
	LoadID uuid.UUID `json:"load_id"`
	Rows   int       `json:"rows"`
}

// LoadCatalog replaces the contents of the games table with t.
//
// The replacement runs in a single transaction: readers see either the
// previous snapshot or the new one, never a partial copy.
func (db *DB) LoadCatalog(ctx context.Context, t *catalog.Table) (res LoadResult, err error) {
	defer db.track("load_catalog", time.Now(), &err)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return LoadResult{}, fmt.Errorf("failed to clear games: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertGame)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	rows := t.Rows()
	for i := range rows {
		g := &rows[i]
		if _, err = stmt.ExecContext(ctx, gameArgs(i, g)...); err != nil {
			return LoadResult{}, fmt.Errorf("failed to insert app %d: %w", g.AppID, err)
		}
	}

	res = LoadResult{LoadID: uuid.New(), Rows: len(rows)}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO catalog_loads (load_id, loaded_at, row_count) VALUES (?, ?, ?)`,
		res.LoadID.String(), time.Now().UTC(), res.Rows,
	); err != nil {
		return LoadResult{}, fmt.Errorf("failed to record load: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return LoadResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.DBRowsMirrored.Set(float64(res.Rows))
	logging.Info().
		Str("load_id", res.LoadID.String()).
		Int("rows", res.Rows).
		Msg("Catalog mirrored into DuckDB")
	return res, nil
}

// CountGames returns the number of rows currently mirrored.
func (db *DB) CountGames(ctx context.Context) (n int, err error) {
	defer db.track("count_games", time.Now(), &err)

	if err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return n, nil
}

func gameArgs(idx int, g *models.Game) []any {
	return []any{
		idx, g.AppID, g.Name, nullString(g.Publishers), g.Genres, g.Categories,
		g.Mac, g.Windows, g.Linux, g.ReleaseDateRaw, nullDate(g.ReleaseDate),
		g.Price, g.Positive, g.Negative, nullInt(g.MetacriticScore), nullFloat(g.UserScore),
		g.DLCCount, nullFloat(g.AveragePlaytime), nullString(g.Movies), nullString(g.Screenshots),
		g.HasMovies, g.HasScreenshots,
	}
}

func nullString(v models.NullString) any {
	if !v.Valid {
		return nil
	}
	return v.String
}

func nullInt(v models.NullInt) any {
	if !v.Valid {
		return nil
	}
	return v.Int64
}

func nullFloat(v models.NullFloat) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func nullDate(v models.NullDate) any {
	if !v.Valid {
		return nil
	}
	return v.Time
}
