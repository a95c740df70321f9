// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// Document is what JSONRenderer writes for each chart.
type Document struct {
	Chart Chart `json:"chart"`
	Style Style `json:"style"`
}

// JSONRenderer writes each chart to <Dir>/<slug>.json.
type JSONRenderer struct {
	Dir string
}

// NewJSONRenderer creates a renderer writing into dir.
func NewJSONRenderer(dir string) *JSONRenderer {
	return &JSONRenderer{Dir: dir}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(ctx context.Context, chart Chart, style Style) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if chart.Slug == "" {
		return fmt.Errorf("chart %q has no slug", chart.Title)
	}
	if err := os.MkdirAll(r.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	data, err := json.MarshalIndent(Document{Chart: chart, Style: style}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	if err := os.WriteFile(r.Path(chart.Slug), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// Path returns the file a chart with the given slug is written to.
func (r *JSONRenderer) Path(slug string) string {
	return filepath.Join(r.Dir, slug+".json")
}
