// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package charts

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
)

// Chart slugs, also used as output file names and metric labels.
const (
	SlugOSDistribution    = "os_distribution"
	SlugOSVotes           = "os_votes"
	SlugSingleplayerTrend = "singleplayer_trend"
	SlugPlaytimeRanking   = "playtime_ranking"
	SlugTop10Playtime     = "top10_playtime"
)

var (
	platformColors = []string{"maroon", "darkkhaki", "darkslategrey"}
	trendColors    = []string{"darkcyan", "saddlebrown"}
	rankingColor   = "skyblue"

	// deepPalette is the seaborn "deep" palette.
	deepPalette = []string{
		"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3",
		"#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD",
	}
)

// BuildOSDistribution draws platform shares as a pie in Mac, Windows, Linux order.
func BuildOSDistribution(shares []models.PlatformShare) Chart {
	points := make([]Point, len(shares))
	for i, s := range shares {
		points[i] = Point{Label: string(s.Platform), Value: s.Percent}
	}
	return Chart{
		Slug:        SlugOSDistribution,
		Kind:        KindPie,
		Title:       "Games by Operating System",
		Series:      []Series{{Name: "Share", Data: points}},
		Colors:      slices.Clone(platformColors),
		ShowLegend:  true,
		ShowValues:  true,
		ValueFormat: "%1.1f%%",
		StartAngle:  140,
	}
}

// BuildOSVotes draws per-platform support counts as bars.
func BuildOSVotes(votes []models.PlatformVotes) Chart {
	points := make([]Point, len(votes))
	for i, v := range votes {
		points[i] = Point{Label: string(v.Platform), Value: models.Stat(v.Votes)}
	}
	return Chart{
		Slug:   SlugOSVotes,
		Kind:   KindBar,
		Title:  "Total Votes by Operating System",
		XAxis:  "Operating system",
		YAxis:  "Total votes",
		Series: []Series{{Name: "Votes", Data: points}},
		Colors: slices.Clone(platformColors),
	}
}

// TrendLine is one labelled yearly series of a trend chart.
type TrendLine struct {
	Name   string
	Counts []models.YearCount
}

// BuildSingleplayerTrend overlays yearly counts as lines with value labels.
// Each line keeps only the years it has data for.
func BuildSingleplayerTrend(title string, lines ...TrendLine) Chart {
	series := make([]Series, len(lines))
	colors := make([]string, len(lines))
	for i, line := range lines {
		points := make([]Point, len(line.Counts))
		for j, c := range line.Counts {
			points[j] = Point{Label: strconv.Itoa(c.Year), Value: models.Stat(c.Count)}
		}
		colors[i] = trendColors[i%len(trendColors)]
		series[i] = Series{Name: line.Name, Data: points, Color: colors[i]}
	}
	return Chart{
		Slug:       SlugSingleplayerTrend,
		Kind:       KindLine,
		Title:      title,
		XAxis:      "Year",
		YAxis:      "Single-player games",
		Series:     series,
		Colors:     colors,
		ShowLegend: true,
		ShowGrid:   true,
		ShowValues: true,
	}
}

// BuildPlaytimeRanking draws per-game mean playtime as bars, highest first.
// Games without a playtime (NaN) are placed last.
func BuildPlaytimeRanking(values []models.GroupValue) Chart {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b models.GroupValue) int {
		switch {
		case a.Value.IsNaN() && b.Value.IsNaN():
			return 0
		case a.Value.IsNaN():
			return 1
		case b.Value.IsNaN():
			return -1
		}
		return cmp.Compare(b.Value, a.Value)
	})
	points := make([]Point, len(sorted))
	for i, v := range sorted {
		points[i] = Point{Label: v.Group, Value: v.Value}
	}
	return Chart{
		Slug:   SlugPlaytimeRanking,
		Kind:   KindBar,
		Title:  "Average Playtime per Game",
		XAxis:  "Game",
		YAxis:  "Average playtime (minutes)",
		Series: []Series{{Name: "Playtime", Data: points, Color: rankingColor}},
		Colors: []string{rankingColor},
	}
}

// BuildTop10Playtime draws a ranking table as horizontal bars labelled by game name.
// The table is expected in rank order.
func BuildTop10Playtime(top *catalog.Table) Chart {
	points := make([]Point, 0, top.Len())
	top.Each(func(_ int, g *models.Game) {
		value := models.Stat(g.AveragePlaytime.Float64)
		if !g.AveragePlaytime.Valid {
			value = nan
		}
		points = append(points, Point{Label: g.Name, Value: value})
	})
	return Chart{
		Slug:   SlugTop10Playtime,
		Kind:   KindHorizontalBar,
		Title:  fmt.Sprintf("Top %d Games by Average Playtime", len(points)),
		XAxis:  "Average playtime (minutes)",
		YAxis:  "Game",
		Series: []Series{{Name: "Playtime", Data: points}},
		Colors: slices.Clone(deepPalette[:min(len(points), len(deepPalette))]),
	}
}
