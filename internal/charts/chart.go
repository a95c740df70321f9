// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package charts

import (
	"slices"

	"github.com/tomtom215/steamlens/internal/models"
)

// Kind selects how a chart is drawn.
type Kind string

const (
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "barh"
	KindLine          Kind = "line"
	KindPie           Kind = "pie"
)

// Chart is a render-ready chart document.
type Chart struct {
	Slug        string   `json:"slug"`
	Kind        Kind     `json:"chartType"`
	Title       string   `json:"title"`
	XAxis       string   `json:"xAxis,omitempty"`
	YAxis       string   `json:"yAxis,omitempty"`
	Series      []Series `json:"series"`
	Colors      []string `json:"colors,omitempty"`
	ShowLegend  bool     `json:"showLegend"`
	ShowGrid    bool     `json:"showGrid"`
	ShowValues  bool     `json:"showValues"`
	ValueFormat string   `json:"valueFormat,omitempty"`
	StartAngle  int      `json:"startAngle,omitempty"`
}

// Series is one named sequence of points.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point is a labelled value. NaN values encode as null.
type Point struct {
	Label string      `json:"label"`
	Value models.Stat `json:"value"`
}

// Labels returns the point labels of the first series.
func (c Chart) Labels() []string {
	if len(c.Series) == 0 {
		return nil
	}
	out := make([]string, len(c.Series[0].Data))
	for i, p := range c.Series[0].Data {
		out[i] = p.Label
	}
	return out
}

// Style carries the typography settings every renderer call receives.
type Style struct {
	FontFamilies []string `json:"fontFamilies"`
	UnicodeMinus bool     `json:"unicodeMinus"`
}

// DefaultStyle prefers CJK-capable fonts, since many catalog titles are
// Japanese or Chinese, and draws minus signs as ASCII hyphens.
func DefaultStyle() Style {
	return Style{
		FontFamilies: []string{"Noto Sans CJK JP", "Noto Sans CJK SC"},
		UnicodeMinus: false,
	}
}

func (s Style) clone() Style {
	s.FontFamilies = slices.Clone(s.FontFamilies)
	return s
}
