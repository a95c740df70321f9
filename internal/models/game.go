// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"strings"
	"time"
)

// Canonical column names as they appear in the catalog CSV header.
const (
	ColAppID           = "AppID"
	ColName            = "Name"
	ColReleaseDate     = "Release date"
	ColPrice           = "Price"
	ColDLCCount        = "DLC count"
	ColWindows         = "Windows"
	ColMac             = "Mac"
	ColLinux           = "Linux"
	ColMetacriticScore = "Metacritic score"
	ColUserScore       = "User score"
	ColPositive        = "Positive"
	ColNegative        = "Negative"
	ColAveragePlaytime = "Average playtime forever"
	ColPublishers      = "Publishers"
	ColGenres          = "Genres"
	ColCategories      = "Categories"
	ColMovies          = "Movies"
	ColScreenshots     = "Screenshots"
)

// Game is one row of the catalog table.
//
// Nullable fields use the Null* wrappers so that "absent in the source"
// stays distinguishable from a zero value. HasMovies and HasScreenshots are
// captured when the row is parsed and are never touched by fill operations.
type Game struct {
	AppID           int64      `json:"app_id"`
	Name            string     `json:"name"`
	Publishers      NullString `json:"publishers"`
	Genres          string     `json:"genres"`
	Categories      string     `json:"categories"`
	Mac             bool       `json:"mac"`
	Windows         bool       `json:"windows"`
	Linux           bool       `json:"linux"`
	ReleaseDateRaw  string     `json:"release_date_raw"`
	ReleaseDate     NullDate   `json:"release_date"`
	Price           float64    `json:"price"`
	Positive        int64      `json:"positive"`
	Negative        int64      `json:"negative"`
	MetacriticScore NullInt    `json:"metacritic_score"`
	UserScore       NullFloat  `json:"user_score"`
	DLCCount        int64      `json:"dlc_count"`
	AveragePlaytime NullFloat  `json:"average_playtime_forever"`
	Movies          NullString `json:"movies"`
	Screenshots     NullString `json:"screenshots"`

	HasMovies      bool `json:"has_movies"`
	HasScreenshots bool `json:"has_screenshots"`
}

// Supports reports whether the game runs on the given platform.
func (g *Game) Supports(p Platform) bool {
	switch p {
	case PlatformMac:
		return g.Mac
	case PlatformWindows:
		return g.Windows
	case PlatformLinux:
		return g.Linux
	default:
		return false
	}
}

// PlatformCount returns how many of the three platforms the game supports.
func (g *Game) PlatformCount() int {
	n := 0
	for _, p := range Platforms {
		if g.Supports(p) {
			n++
		}
	}
	return n
}

// ReleaseYear returns the release year and whether the release date is valid.
func (g *Game) ReleaseYear() (int, bool) {
	if !g.ReleaseDate.Valid {
		return 0, false
	}
	return g.ReleaseDate.Time.Year(), true
}

// Platform identifies one of the three operating system support flags.
type Platform string

const (
	PlatformMac     Platform = "Mac"
	PlatformWindows Platform = "Windows"
	PlatformLinux   Platform = "Linux"
)

// Platforms lists the platform flags in the order charts present them.
var Platforms = []Platform{PlatformMac, PlatformWindows, PlatformLinux}

// ParsePlatform maps a column name to a Platform, ignoring case.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// NullString is a string that may be absent.
type NullString struct {
	String string `json:"value"`
	Valid  bool   `json:"valid"`
}

// NullInt is an int64 that may be absent.
type NullInt struct {
	Int64 int64 `json:"value"`
	Valid bool  `json:"valid"`
}

// NullFloat is a float64 that may be absent.
type NullFloat struct {
	Float64 float64 `json:"value"`
	Valid   bool    `json:"valid"`
}

// NullDate is a calendar date that may be absent or unparseable.
type NullDate struct {
	Time  time.Time `json:"value"`
	Valid bool      `json:"valid"`
}
