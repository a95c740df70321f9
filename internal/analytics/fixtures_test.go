// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"time"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
)

func nf(x float64) models.NullFloat { return models.NullFloat{Float64: x, Valid: true} }

func ni(x int64) models.NullInt { return models.NullInt{Int64: x, Valid: true} }

func ns(s string) models.NullString { return models.NullString{String: s, Valid: true} }

func released(year int) models.NullDate {
	return models.NullDate{Time: time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC), Valid: true}
}

// catalogFixture is a small table covering every query in the package.
func catalogFixture() *catalog.Table {
	return catalog.NewTable([]models.Game{
		{AppID: 1, Name: "Alpha", Publishers: ns("VALVE"), Genres: "Action", Categories: "Multi-player",
			Windows: true, Mac: true, Linux: true, ReleaseDate: released(2012), Price: 9.99,
			Positive: 100, Negative: 10, MetacriticScore: ni(88), UserScore: nf(7.1),
			DLCCount: 1, AveragePlaytime: nf(300), HasMovies: true, HasScreenshots: true},
		{AppID: 2, Name: "Bravo", Publishers: ns("VALVE"), Genres: "RPG", Categories: "Single-player",
			Windows: true, ReleaseDate: released(2019), Price: 19.99,
			Positive: 300, Negative: 30, MetacriticScore: ni(88), UserScore: nf(9.0),
			DLCCount: 4, AveragePlaytime: nf(1200), HasScreenshots: true},
		{AppID: 3, Name: "Charlie", Publishers: ns("INDIE CO"), Genres: "Indie, Strategy", Categories: "Single-player",
			Windows: true, Linux: true, ReleaseDate: released(2015), Price: 4.99,
			Positive: 50, Negative: 5, MetacriticScore: ni(70), UserScore: nf(9.0),
			DLCCount: 0, AveragePlaytime: nf(45)},
		{AppID: 4, Name: "Delta", Genres: "RPG", Categories: "Single-player",
			Mac: true, ReleaseDateRaw: "coming soon", Price: 0,
			Positive: 20, Negative: 2, DLCCount: 10, HasMovies: true},
		{AppID: 5, Name: "Echo", Publishers: ns("INDIE CO"), Genres: "Indie", Categories: "Single-player",
			Windows: true, Mac: true, Linux: true, ReleaseDate: released(2015), Price: 1.99,
			Positive: 80, Negative: 8, MetacriticScore: ni(75), AveragePlaytime: nf(45)},
		{AppID: 6, Name: "Foxtrot", Publishers: ns("SOLO"), Genres: "Strategy", Categories: "Single-player",
			ReleaseDate: released(2011), Price: 14.99,
			Positive: 60, Negative: 6, MetacriticScore: ni(70), UserScore: nf(6.5), DLCCount: 2},
	})
}
