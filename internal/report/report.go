// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/charts"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
)

// Trend window and filters of the single-player chart.
const (
	trendCategory = "Single-player"
	trendYearMin  = 2010
	trendYearMax  = 2020
)

// trendGenres are compared in the single-player trend, in chart order.
var trendGenres = []string{"Indie", "Strategy"}

// Report is the document written to report.json.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Dataset     string    `json:"dataset"`
	Rows        int       `json:"rows"`

	ColumnTypes       []models.ColumnType        `json:"column_types"`
	TopRated          []models.Game              `json:"top_rated"`
	RPGStats          analytics.GroupStatsResult `json:"rpg_stats"`
	PublisherSummary  []models.GroupSummary      `json:"publisher_positive_summary"`
	TopPublishers     []models.GroupCount        `json:"top_publishers"`
	PlatformGrowth    models.PlatformGrowth      `json:"platform_growth"`
	SingleplayerTrend []TrendSeries              `json:"singleplayer_trend"`
	TopUserScores     []models.ScoreEntry        `json:"top_user_scores"`
	TopPlaytime       []models.Game              `json:"top_playtime"`
	PlaytimeByGame    []models.GroupValue        `json:"playtime_by_game"`
	OSDistribution    []models.PlatformShare     `json:"os_distribution"`
	OSVotes           []models.PlatformVotes     `json:"os_votes"`
	Charts            []ChartFile                `json:"charts,omitempty"`
	Mirror            *MirrorSection             `json:"mirror,omitempty"`
}

// TrendSeries is the yearly release count of one genre.
type TrendSeries struct {
	Genre  string             `json:"genre"`
	Counts []models.YearCount `json:"counts"`
}

// ChartFile names a rendered chart.
type ChartFile struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// Generator runs every catalog query and assembles a Report.
type Generator struct {
	cfg      *config.Config
	renderer charts.Renderer
	mirror   Mirror
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the chart renderer. Without one, charts are skipped.
func WithRenderer(r charts.Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithMirror sets the DuckDB mirror the report cross-checks against.
func WithMirror(m Mirror) Option {
	return func(g *Generator) { g.mirror = m }
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate loads the configured dataset and builds the report.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	raw, err := catalog.LoadFile(ctx, g.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	rep, err := g.Build(ctx, raw)
	if err != nil {
		return nil, err
	}
	rep.Dataset = g.cfg.Dataset.Path
	return rep, nil
}

// Build runs every query over raw, a freshly loaded table.
//
// Ranking by rating and column types use the raw table. Everything after
// that runs on the treated table, with missing publishers filled.
//
//nolint:gocyclo // sequential report sections
func (g *Generator) Build(ctx context.Context, raw *catalog.Table) (*Report, error) {
	rc := g.cfg.Report
	rep := &Report{
		ID:          logging.CorrelationIDFromContext(ctx),
		GeneratedAt: time.Now().UTC(),
		Rows:        raw.Len(),
	}
	if rep.ID == "" {
		rep.ID = logging.GenerateCorrelationID()
	}
	log := logging.Ctx(ctx)

	var err error
	if rep.ColumnTypes, err = raw.ColumnTypes(raw.Columns()...); err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}
	topRated, err := analytics.TopRated(raw, rc.TopN)
	if err != nil {
		return nil, fmt.Errorf("top rated: %w", err)
	}
	rep.TopRated = topRated.Rows()

	treated, err := raw.Treat(g.cfg.Catalog.MovieFill)
	if err != nil {
		return nil, fmt.Errorf("treat: %w", err)
	}
	if rep.RPGStats, err = analytics.RPGStats(treated); err != nil {
		return nil, fmt.Errorf("rpg stats: %w", err)
	}

	filled, err := treated.FillPublishers(g.cfg.Catalog.UnknownPublisher)
	if err != nil {
		return nil, fmt.Errorf("fill publishers: %w", err)
	}
	if rep.TopPublishers, err = analytics.TopPublishers(filled, rc.TopK); err != nil {
		return nil, fmt.Errorf("top publishers: %w", err)
	}
	publishers := rc.Publishers
	if len(publishers) == 0 {
		for _, pc := range rep.TopPublishers {
			publishers = append(publishers, pc.Group)
		}
	}
	if rep.PublisherSummary, err = analytics.PublisherPositiveSummary(filled, publishers); err != nil {
		return nil, fmt.Errorf("publisher summary: %w", err)
	}

	platform, ok := models.ParsePlatform(rc.GrowthPlatform)
	if !ok {
		return nil, fmt.Errorf("unknown growth platform %q", rc.GrowthPlatform)
	}
	if rep.PlatformGrowth, err = analytics.PlatformGrowth(filled, platform, rc.GrowthYearMin, rc.GrowthYearMax); err != nil {
		return nil, fmt.Errorf("platform growth: %w", err)
	}
	for _, genre := range trendGenres {
		counts, err := analytics.YearlyTrend(filled, genre, trendCategory, trendYearMin, trendYearMax)
		if err != nil {
			return nil, fmt.Errorf("yearly trend %s: %w", genre, err)
		}
		rep.SingleplayerTrend = append(rep.SingleplayerTrend, TrendSeries{Genre: genre, Counts: counts})
	}

	if rep.TopUserScores, err = analytics.TopUserScores(filled, rc.TopN); err != nil {
		return nil, fmt.Errorf("top user scores: %w", err)
	}
	topPlaytime, err := analytics.TopPlaytime(filled, rc.TopN)
	if err != nil {
		return nil, fmt.Errorf("top playtime: %w", err)
	}
	rep.TopPlaytime = topPlaytime.Rows()
	if rep.PlaytimeByGame, err = analytics.PlaytimeByGame(filled); err != nil {
		return nil, fmt.Errorf("playtime by game: %w", err)
	}
	if rep.OSDistribution, err = analytics.OSDistribution(filled, g.cfg.Charts.AllPlatformBonus); err != nil {
		return nil, fmt.Errorf("os distribution: %w", err)
	}
	if rep.OSVotes, err = analytics.OSVotes(filled); err != nil {
		return nil, fmt.Errorf("os votes: %w", err)
	}

	if g.renderer != nil && g.cfg.Charts.Enabled {
		if rep.Charts, err = g.renderCharts(ctx, filled, rep.PlaytimeByGame); err != nil {
			return nil, err
		}
	}

	if g.mirror != nil {
		if rep.Mirror, err = g.crossCheck(ctx, filled, rep); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("report_id", rep.ID).
		Int("rows", rep.Rows).
		Int("charts", len(rep.Charts)).
		Bool("mirrored", rep.Mirror != nil).
		Msg("Report built")
	return rep, nil
}

func (g *Generator) renderCharts(ctx context.Context, t *catalog.Table, playtime []models.GroupValue) ([]ChartFile, error) {
	style := charts.Style{
		FontFamilies: g.cfg.Charts.FontFamilies,
		UnicodeMinus: g.cfg.Charts.UnicodeMinus,
	}
	charter := charts.NewCharter(g.renderer, &style, charts.Options{
		AllPlatformBonus: g.cfg.Charts.AllPlatformBonus,
	})

	steps := []func() (charts.Chart, error){
		func() (charts.Chart, error) { return charter.RenderOSDistribution(ctx, t) },
		func() (charts.Chart, error) { return charter.RenderOSVotes(ctx, t) },
		func() (charts.Chart, error) { return charter.RenderSingleplayerTrend(ctx, t) },
		func() (charts.Chart, error) { return charter.RenderPlaytimeRanking(ctx, playtime) },
		func() (charts.Chart, error) { return charter.RenderTop10PlaytimeBar(ctx, t) },
	}
	files := make([]ChartFile, 0, len(steps))
	for _, step := range steps {
		chart, err := step()
		if err != nil {
			return nil, err
		}
		files = append(files, ChartFile{Slug: chart.Slug, Title: chart.Title, Kind: string(chart.Kind)})
	}
	return files, nil
}
