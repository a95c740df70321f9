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

// OSDistribution computes each platform's share of support votes among games
// that run on at least one platform. With allPlatformBonus set, the number of
// games supporting all three platforms is added to every platform's votes
// before percentages are taken, which reproduces the historical report figures.
// Shares are returned in Mac, Windows, Linux order and are NaN when no game
// supports any platform.
func OSDistribution(t *catalog.Table, allPlatformBonus bool) (_ []models.PlatformShare, err error) {
	defer track("os_distribution", time.Now(), &err)

	if err := requirePlatforms(t); err != nil {
		return nil, err
	}

	votes := make(map[models.Platform]int, len(models.Platforms))
	allThree := 0
	t.Filter(catalog.AnyPlatform()).Each(func(_ int, g *models.Game) {
		for _, p := range models.Platforms {
			if g.Supports(p) {
				votes[p]++
			}
		}
		if g.PlatformCount() == len(models.Platforms) {
			allThree++
		}
	})

	total := 0
	for _, p := range models.Platforms {
		if allPlatformBonus {
			votes[p] += allThree
		}
		total += votes[p]
	}

	out := make([]models.PlatformShare, len(models.Platforms))
	for i, p := range models.Platforms {
		share := nan
		if total > 0 {
			share = models.Stat(float64(votes[p]) / float64(total) * 100)
		}
		out[i] = models.PlatformShare{Platform: p, Votes: votes[p], Percent: share}
	}
	return out, nil
}

// OSVotes counts the games supporting each platform, in Mac, Windows, Linux order.
func OSVotes(t *catalog.Table) (_ []models.PlatformVotes, err error) {
	defer track("os_votes", time.Now(), &err)

	if err := requirePlatforms(t); err != nil {
		return nil, err
	}

	out := make([]models.PlatformVotes, len(models.Platforms))
	for i, p := range models.Platforms {
		out[i].Platform = p
	}
	t.Each(func(_ int, g *models.Game) {
		for i, p := range models.Platforms {
			if g.Supports(p) {
				out[i].Votes++
			}
		}
	})
	return out, nil
}

func requirePlatforms(t *catalog.Table) error {
	for _, p := range models.Platforms {
		if err := requireColumns(t, string(p)); err != nil {
			return err
		}
	}
	return nil
}
