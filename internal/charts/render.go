// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package charts

import (
	"context"
	"fmt"
	"math"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

var nan = models.Stat(math.NaN())

// Renderer draws a chart. Implementations must not retain chart or style.
type Renderer interface {
	Render(ctx context.Context, chart Chart, style Style) error
}

// Options tune the report charts.
type Options struct {
	// AllPlatformBonus adds the count of games supporting every platform to
	// each platform's votes in the distribution pie.
	AllPlatformBonus bool
}

// Charter runs the queries behind each report chart and renders the result.
type Charter struct {
	renderer Renderer
	style    Style
	opts     Options
}

// NewCharter creates a Charter. A nil style uses DefaultStyle.
func NewCharter(r Renderer, style *Style, opts Options) *Charter {
	s := DefaultStyle()
	if style != nil {
		s = style.clone()
	}
	return &Charter{renderer: r, style: s, opts: opts}
}

// Style returns the style handed to every render call.
func (c *Charter) Style() Style {
	return c.style.clone()
}

// RenderOSDistribution renders the platform share pie.
func (c *Charter) RenderOSDistribution(ctx context.Context, t *catalog.Table) (Chart, error) {
	shares, err := analytics.OSDistribution(t, c.opts.AllPlatformBonus)
	if err != nil {
		return Chart{}, err
	}
	return c.render(ctx, BuildOSDistribution(shares))
}

// RenderOSVotes renders per-platform support counts.
func (c *Charter) RenderOSVotes(ctx context.Context, t *catalog.Table) (Chart, error) {
	votes, err := analytics.OSVotes(t)
	if err != nil {
		return Chart{}, err
	}
	return c.render(ctx, BuildOSVotes(votes))
}

// RenderSingleplayerTrend renders yearly single-player releases of Indie and
// Strategy games between 2010 and 2020.
func (c *Charter) RenderSingleplayerTrend(ctx context.Context, t *catalog.Table) (Chart, error) {
	const (
		category = "Single-player"
		yearMin  = 2010
		yearMax  = 2020
	)
	indie, err := analytics.YearlyTrend(t, "Indie", category, yearMin, yearMax)
	if err != nil {
		return Chart{}, err
	}
	strategy, err := analytics.YearlyTrend(t, "Strategy", category, yearMin, yearMax)
	if err != nil {
		return Chart{}, err
	}
	title := fmt.Sprintf("Single-Player Games in \"Indie\" and \"Strategy\" (%d-%d)", yearMin, yearMax)
	return c.render(ctx, BuildSingleplayerTrend(title,
		TrendLine{Name: "Indie", Counts: indie},
		TrendLine{Name: "Strategy", Counts: strategy},
	))
}

// RenderPlaytimeRanking renders precomputed per-game playtime means.
func (c *Charter) RenderPlaytimeRanking(ctx context.Context, playtimeByGame []models.GroupValue) (Chart, error) {
	return c.render(ctx, BuildPlaytimeRanking(playtimeByGame))
}

// RenderTop10PlaytimeBar renders the ten games with the longest average playtime.
func (c *Charter) RenderTop10PlaytimeBar(ctx context.Context, t *catalog.Table) (Chart, error) {
	top, err := analytics.TopPlaytime(t, 10)
	if err != nil {
		return Chart{}, err
	}
	return c.render(ctx, BuildTop10Playtime(top))
}

func (c *Charter) render(ctx context.Context, chart Chart) (Chart, error) {
	err := c.renderer.Render(ctx, chart, c.style.clone())
	metrics.RecordChart(chart.Slug, err)
	if err != nil {
		return Chart{}, fmt.Errorf("failed to render %s: %w", chart.Slug, err)
	}
	logging.Ctx(ctx).Debug().Str("chart", chart.Slug).Int("series", len(chart.Series)).Msg("Chart rendered")
	return chart, nil
}
