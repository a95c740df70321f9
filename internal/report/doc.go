// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package report runs every catalog query against one dataset and assembles the
results into a single JSON document.

A Generator loads the CSV, ranks the raw table, treats it (upper-cased
publishers, filled movies), fills missing publishers and runs the group,
trend and platform queries on the result. With a renderer attached it also
renders the five report charts, and with a Mirror attached it copies the
treated table into DuckDB and records whether the SQL answers agree.

	gen := report.NewGenerator(cfg,
	    report.WithRenderer(charts.NewJSONRenderer(cfg.Charts.OutputDir)),
	    report.WithMirror(db),
	)
	rep, err := gen.Generate(ctx)
	if err != nil {
	    return err
	}
	path, err := report.Write(cfg.Report.OutputDir, rep)
*/
package report
