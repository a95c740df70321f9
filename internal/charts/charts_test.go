// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package charts

import (
	"context"
	"errors"
	"math"
	"os"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
)

// recordingRenderer keeps every chart it is handed.
type recordingRenderer struct {
	mu     sync.Mutex
	charts []Chart
	styles []Style
	err    error
}

func (r *recordingRenderer) Render(_ context.Context, chart Chart, style Style) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.charts = append(r.charts, chart)
	r.styles = append(r.styles, style)
	return nil
}

func released(year int) models.NullDate {
	return models.NullDate{Time: time.Date(year, time.March, 3, 0, 0, 0, 0, time.UTC), Valid: true}
}

func playtime(m float64) models.NullFloat { return models.NullFloat{Float64: m, Valid: true} }

func fixture() *catalog.Table {
	return catalog.NewTable([]models.Game{
		{AppID: 1, Name: "Alpha", Genres: "Indie", Categories: "Single-player", Mac: true, Windows: true, Linux: true,
			ReleaseDate: released(2012), AveragePlaytime: playtime(50)},
		{AppID: 2, Name: "Bravo", Genres: "Strategy", Categories: "Single-player", Windows: true,
			ReleaseDate: released(2012), AveragePlaytime: playtime(500)},
		{AppID: 3, Name: "Charlie", Genres: "Indie, Strategy", Categories: "Single-player", Windows: true, Linux: true,
			ReleaseDate: released(2014)},
		{AppID: 4, Name: "Delta", Genres: "Indie", Categories: "Multi-player", Mac: true,
			ReleaseDate: released(2009), AveragePlaytime: playtime(120)},
	})
}

func TestBuildOSDistribution(t *testing.T) {
	t.Parallel()

	chart := BuildOSDistribution([]models.PlatformShare{
		{Platform: models.PlatformMac, Votes: 1, Percent: 25},
		{Platform: models.PlatformWindows, Votes: 2, Percent: 50},
		{Platform: models.PlatformLinux, Votes: 1, Percent: 25},
	})
	if chart.Kind != KindPie || !chart.ShowLegend {
		t.Errorf("expected pie with legend, got %s legend=%v", chart.Kind, chart.ShowLegend)
	}
	if !slices.Equal(chart.Labels(), []string{"Mac", "Windows", "Linux"}) {
		t.Errorf("labels = %v", chart.Labels())
	}
	if !slices.Equal(chart.Colors, []string{"maroon", "darkkhaki", "darkslategrey"}) {
		t.Errorf("colors = %v", chart.Colors)
	}
}

func TestBuildPlaytimeRanking_DescendingNaNLast(t *testing.T) {
	t.Parallel()

	input := []models.GroupValue{
		{Group: "A", Value: 10},
		{Group: "B", Value: models.Stat(math.NaN())},
		{Group: "C", Value: 30},
		{Group: "D", Value: 20},
	}
	chart := BuildPlaytimeRanking(input)
	if got := chart.Labels(); !slices.Equal(got, []string{"C", "D", "A", "B"}) {
		t.Errorf("labels = %v, want [C D A B]", got)
	}
	if input[0].Group != "A" {
		t.Error("BuildPlaytimeRanking reordered its input")
	}
	if chart.Series[0].Color != "skyblue" {
		t.Errorf("color = %q, want skyblue", chart.Series[0].Color)
	}
}

func TestCharter_RendersEveryChart(t *testing.T) {
	t.Parallel()

	rec := &recordingRenderer{}
	style := Style{FontFamilies: []string{"Test Sans"}, UnicodeMinus: true}
	c := NewCharter(rec, &style, Options{AllPlatformBonus: true})
	ctx := context.Background()
	tbl := fixture()

	pie, err := c.RenderOSDistribution(ctx, tbl)
	if err != nil {
		t.Fatalf("RenderOSDistribution() error = %v", err)
	}
	// Mac 2, Windows 3, Linux 2 plus one all-platform game each: 3/4/3 of 10.
	want := []models.Stat{30, 40, 30}
	for i, p := range pie.Series[0].Data {
		if math.Abs(float64(p.Value-want[i])) > 1e-9 {
			t.Errorf("%s share = %v, want %v", p.Label, p.Value, want[i])
		}
	}

	if _, err := c.RenderOSVotes(ctx, tbl); err != nil {
		t.Fatalf("RenderOSVotes() error = %v", err)
	}

	trend, err := c.RenderSingleplayerTrend(ctx, tbl)
	if err != nil {
		t.Fatalf("RenderSingleplayerTrend() error = %v", err)
	}
	if len(trend.Series) != 2 || trend.Series[0].Name != "Indie" || trend.Series[1].Name != "Strategy" {
		t.Fatalf("unexpected trend series: %+v", trend.Series)
	}
	if got := trend.Labels(); !slices.Equal(got, []string{"2012", "2014"}) {
		t.Errorf("indie years = %v, want [2012 2014]", got)
	}
	if trend.Series[0].Color != "darkcyan" || trend.Series[1].Color != "saddlebrown" {
		t.Errorf("trend colors = %s/%s", trend.Series[0].Color, trend.Series[1].Color)
	}

	if _, err := c.RenderPlaytimeRanking(ctx, []models.GroupValue{{Group: "Alpha", Value: 50}}); err != nil {
		t.Fatalf("RenderPlaytimeRanking() error = %v", err)
	}

	bar, err := c.RenderTop10PlaytimeBar(ctx, tbl)
	if err != nil {
		t.Fatalf("RenderTop10PlaytimeBar() error = %v", err)
	}
	if bar.Kind != KindHorizontalBar {
		t.Errorf("kind = %s, want barh", bar.Kind)
	}
	if got := bar.Labels(); !slices.Equal(got, []string{"Bravo", "Delta", "Alpha"}) {
		t.Errorf("top playtime labels = %v", got)
	}

	if len(rec.charts) != 5 {
		t.Fatalf("renderer received %d charts, want 5", len(rec.charts))
	}
	for i, s := range rec.styles {
		if !slices.Equal(s.FontFamilies, []string{"Test Sans"}) || !s.UnicodeMinus {
			t.Errorf("chart %s rendered with style %+v", rec.charts[i].Slug, s)
		}
	}
}

func TestCharter_DefaultStyle(t *testing.T) {
	t.Parallel()

	c := NewCharter(&recordingRenderer{}, nil, Options{})
	got := c.Style()
	if !slices.Equal(got.FontFamilies, []string{"Noto Sans CJK JP", "Noto Sans CJK SC"}) || got.UnicodeMinus {
		t.Errorf("default style = %+v", got)
	}
}

func TestCharter_RendererError(t *testing.T) {
	t.Parallel()

	boom := errors.New("surface closed")
	c := NewCharter(&recordingRenderer{err: boom}, nil, Options{})
	if _, err := c.RenderOSVotes(context.Background(), fixture()); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	r := NewJSONRenderer(t.TempDir())
	chart := BuildPlaytimeRanking([]models.GroupValue{
		{Group: "Known", Value: 12.5},
		{Group: "Unknown", Value: models.Stat(math.NaN())},
	})
	if err := r.Render(context.Background(), chart, DefaultStyle()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(r.Path(SlugPlaytimeRanking))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"value": null`) {
		t.Errorf("NaN should encode as null:\n%s", data)
	}

	var doc struct {
		Chart struct {
			Slug   string `json:"slug"`
			Series []struct {
				Data []struct {
					Label string   `json:"label"`
					Value *float64 `json:"value"`
				} `json:"data"`
			} `json:"series"`
		} `json:"chart"`
		Style Style `json:"style"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Chart.Slug != SlugPlaytimeRanking {
		t.Errorf("slug = %q", doc.Chart.Slug)
	}
	points := doc.Chart.Series[0].Data
	if points[0].Value == nil || *points[0].Value != 12.5 || points[1].Value != nil {
		t.Errorf("unexpected points: %+v", points)
	}
	if len(doc.Style.FontFamilies) != 2 {
		t.Errorf("style not written: %+v", doc.Style)
	}
}

func TestJSONRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewJSONRenderer(t.TempDir())
	if err := r.Render(ctx, BuildOSVotes(nil), DefaultStyle()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
