// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"fmt"
)

// gamesTable is the mirror of the catalog. row_idx keeps the CSV order so
// that tie-breaks by first appearance match the in-memory queries.
const gamesTable = `CREATE TABLE IF NOT EXISTS games (
	row_idx BIGINT PRIMARY KEY,
	app_id BIGINT NOT NULL,
	name VARCHAR NOT NULL,
	publishers VARCHAR,
	genres VARCHAR NOT NULL,
	categories VARCHAR NOT NULL,
	mac BOOLEAN NOT NULL,
	windows BOOLEAN NOT NULL,
	linux BOOLEAN NOT NULL,
	release_date_raw VARCHAR NOT NULL,
	release_date DATE,
	price DOUBLE NOT NULL,
	positive BIGINT NOT NULL,
	negative BIGINT NOT NULL,
	metacritic_score BIGINT,
	user_score DOUBLE,
	dlc_count BIGINT NOT NULL,
	average_playtime_forever DOUBLE,
	movies VARCHAR,
	screenshots VARCHAR,
	has_movies BOOLEAN NOT NULL,
	has_screenshots BOOLEAN NOT NULL
)`

// loadsTable records one row per LoadCatalog call.
const loadsTable = `CREATE TABLE IF NOT EXISTS catalog_loads (
	load_id VARCHAR PRIMARY KEY,
	loaded_at TIMESTAMP NOT NULL,
	row_count BIGINT NOT NULL
)`

var schemaStatements = []struct {
	name string
	sql  string
}{
	{"games", gamesTable},
	{"catalog_loads", loadsTable},
	{"idx_games_release_date", `CREATE INDEX IF NOT EXISTS idx_games_release_date ON games(release_date)`},
}

func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}
