// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"slices"
	"time"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// Verdicts reported by PlatformGrowth.
const (
	VerdictYes = "yes"
	VerdictNo  = "no"
)

// PlatformGrowth counts releases supporting platform in every year of the
// inclusive window [yearMin, yearMax]. Years without releases are reported as
// zero. Rows whose release date did not parse are excluded. The verdict is
// "yes" when at least one release falls inside the window.
func PlatformGrowth(t *catalog.Table, platform models.Platform, yearMin, yearMax int) (_ models.PlatformGrowth, err error) {
	defer track("platform_growth", time.Now(), &err)

	if err := requireColumns(t, string(platform), models.ColReleaseDate); err != nil {
		return models.PlatformGrowth{}, err
	}
	req := validation.PlatformWindow{
		Platform:   string(platform),
		YearWindow: validation.YearWindow{YearMin: yearMin, YearMax: yearMax},
	}
	if err := validation.Validate(&req); err != nil {
		return models.PlatformGrowth{}, err
	}

	counts := make([]models.YearCount, yearMax-yearMin+1)
	for i := range counts {
		counts[i].Year = yearMin + i
	}
	total := 0
	t.Filter(catalog.And(catalog.Supports(platform), catalog.ReleasedBetween(yearMin, yearMax))).
		Each(func(_ int, g *models.Game) {
			y, _ := g.ReleaseYear()
			counts[y-yearMin].Count++
			total++
		})

	res := models.PlatformGrowth{
		Platform: platform,
		YearMin:  yearMin,
		YearMax:  yearMax,
		Grew:     total > 0,
		Verdict:  VerdictNo,
		Total:    total,
		Counts:   counts,
	}
	if res.Grew {
		res.Verdict = VerdictYes
	}
	return res, nil
}

// YearlyTrend counts, per release year, the rows whose genre contains
// genreSubstr (case-sensitive), whose category equals category, and whose
// release year lies in [yearMin, yearMax]. Only years with at least one match
// are returned, in ascending order.
func YearlyTrend(t *catalog.Table, genreSubstr, category string, yearMin, yearMax int) (_ []models.YearCount, err error) {
	defer track("yearly_trend", time.Now(), &err)

	if err := requireColumns(t, models.ColGenres, models.ColCategories, models.ColReleaseDate); err != nil {
		return nil, err
	}
	if err := validation.Validate(&validation.YearWindow{YearMin: yearMin, YearMax: yearMax}); err != nil {
		return nil, err
	}

	perYear := make(map[int]int)
	pred := catalog.And(
		catalog.GenreContains(genreSubstr),
		catalog.CategoryEquals(category),
		catalog.ReleasedBetween(yearMin, yearMax),
	)
	t.Filter(pred).Each(func(_ int, g *models.Game) {
		y, _ := g.ReleaseYear()
		perYear[y]++
	})

	out := make([]models.YearCount, 0, len(perYear))
	for y, n := range perYear {
		out = append(out, models.YearCount{Year: y, Count: n})
	}
	slices.SortFunc(out, func(a, b models.YearCount) int { return a.Year - b.Year })
	return out, nil
}

func requireColumns(t *catalog.Table, names ...string) error {
	for _, name := range names {
		if _, err := t.Column(name); err != nil {
			return err
		}
	}
	return nil
}
