// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package charts turns query results into render-ready chart documents.
//
// Builders (Build*) are pure: they take analytics results and return a Chart
// describing series, labels, colors and axis titles. A Charter runs the
// queries behind each report chart and hands the result to a Renderer,
// together with the Style it was created with. There is no process-wide
// plotting state; two Charters with different styles can render side by side.
//
// JSONRenderer is the bundled Renderer. It writes each chart as an indented
// JSON document named after the chart slug, for a frontend or notebook to draw.
package charts
