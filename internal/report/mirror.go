// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
)

// Mirror is the SQL engine the report cross-checks the in-memory results with.
type Mirror interface {
	LoadCatalog(ctx context.Context, t *catalog.Table) (database.LoadResult, error)
	ColumnTypes(ctx context.Context) ([]models.ColumnType, error)
	TopPublishers(ctx context.Context, k int) ([]models.GroupCount, error)
	YearlyTrend(ctx context.Context, genreSubstr, category string, yearMin, yearMax int) ([]models.YearCount, error)
	PlatformGrowth(ctx context.Context, platform models.Platform, yearMin, yearMax int) (models.PlatformGrowth, error)
}

var _ Mirror = (*database.DB)(nil)

// MirrorSection holds the mirror's answers and any disagreement with the
// in-memory engine.
type MirrorSection struct {
	LoadID         string                `json:"load_id"`
	Rows           int                   `json:"rows"`
	ColumnTypes    []models.ColumnType   `json:"column_types"`
	TopPublishers  []models.GroupCount   `json:"top_publishers"`
	PlatformGrowth models.PlatformGrowth `json:"platform_growth"`
	Trend          []TrendSeries         `json:"singleplayer_trend"`
	Consistent     bool                  `json:"consistent"`
	Mismatches     []string              `json:"mismatches,omitempty"`
}

func (g *Generator) crossCheck(ctx context.Context, t *catalog.Table, rep *Report) (*MirrorSection, error) {
	rc := g.cfg.Report
	log := logging.Ctx(ctx)

	load, err := g.mirror.LoadCatalog(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("mirror load: %w", err)
	}
	sec := &MirrorSection{LoadID: load.LoadID.String(), Rows: load.Rows}

	if sec.ColumnTypes, err = g.mirror.ColumnTypes(ctx); err != nil {
		return nil, fmt.Errorf("mirror column types: %w", err)
	}
	if sec.TopPublishers, err = g.mirror.TopPublishers(ctx, rc.TopK); err != nil {
		return nil, fmt.Errorf("mirror top publishers: %w", err)
	}
	if sec.PlatformGrowth, err = g.mirror.PlatformGrowth(ctx, rep.PlatformGrowth.Platform, rc.GrowthYearMin, rc.GrowthYearMax); err != nil {
		return nil, fmt.Errorf("mirror platform growth: %w", err)
	}
	for _, genre := range trendGenres {
		counts, err := g.mirror.YearlyTrend(ctx, genre, trendCategory, trendYearMin, trendYearMax)
		if err != nil {
			return nil, fmt.Errorf("mirror yearly trend %s: %w", genre, err)
		}
		sec.Trend = append(sec.Trend, TrendSeries{Genre: genre, Counts: counts})
	}

	if sec.Rows != rep.Rows {
		sec.Mismatches = append(sec.Mismatches, fmt.Sprintf("rows: mirror %d, memory %d", sec.Rows, rep.Rows))
	}
	if !slices.Equal(sec.TopPublishers, rep.TopPublishers) {
		sec.Mismatches = append(sec.Mismatches, "top_publishers")
	}
	if !sameGrowth(sec.PlatformGrowth, rep.PlatformGrowth) {
		sec.Mismatches = append(sec.Mismatches, "platform_growth")
	}
	for i, series := range sec.Trend {
		if !slices.Equal(series.Counts, rep.SingleplayerTrend[i].Counts) {
			sec.Mismatches = append(sec.Mismatches, "singleplayer_trend:"+series.Genre)
		}
	}
	sec.Consistent = len(sec.Mismatches) == 0

	if !sec.Consistent {
		log.Warn().Strs("mismatches", sec.Mismatches).Str("load_id", sec.LoadID).Msg("DuckDB mirror disagrees with in-memory results")
	} else {
		log.Info().Str("load_id", sec.LoadID).Int("rows", sec.Rows).Msg("DuckDB mirror consistent")
	}
	return sec, nil
}

func sameGrowth(a, b models.PlatformGrowth) bool {
	return a.Platform == b.Platform &&
		a.YearMin == b.YearMin &&
		a.YearMax == b.YearMax &&
		a.Grew == b.Grew &&
		a.Verdict == b.Verdict &&
		a.Total == b.Total &&
		slices.Equal(a.Counts, b.Counts)
}
