// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package catalog holds the in-memory game table and everything needed to build it.

# Overview

A Table is an immutable snapshot of catalog rows. Loading parses the CSV once;
every normalization (UpperPublishers, FillMissing, CoerceNumeric, ...) returns a
new Table and leaves the receiver untouched, so callers decide explicitly which
snapshot later queries observe.

# Columns

Rows are typed (models.Game) but every by-name operation goes through the
column registry, keyed by the CSV header names ("Metacritic score",
"Average playtime forever", ...). Asking for a column that the loaded file did
not carry fails with ErrUnknownColumn.

Each column also carries a storage type tag (int64, float64, bool, string,
date). Numeric columns whose raw cells could not all be parsed report
"string" until CoerceNumeric is applied; the release date reports "string"
until CoerceDates.

# Presence Flags

HasMovies and HasScreenshots are captured while rows are parsed, before any
default substitution can happen. FillMissing never recomputes them.

# Example

	tbl, err := catalog.LoadFile(ctx, "base/dataset/steam_games.csv")
	if err != nil {
	    return err
	}
	tbl = tbl.UpperPublishers()
	rpg := tbl.Filter(catalog.GenreEquals("RPG"))
*/
package catalog
