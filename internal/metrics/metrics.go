// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// maxErrorLabel bounds the cardinality of error_type labels.
const maxErrorLabel = 50

var (
	// Catalog Load Metrics
	RowsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "steamlens_rows_loaded",
			Help: "Number of rows in the most recently loaded catalog",
		},
	)

	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "steamlens_load_duration_seconds",
			Help:    "Time spent parsing the catalog CSV",
			Buckets: prometheus.DefBuckets,
		},
	)

	LoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "steamlens_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steamlens_query_duration_seconds",
			Help:    "Duration of in-memory catalog queries in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_query_errors_total",
			Help: "Total number of failed catalog queries",
		},
		[]string{"query", "error_type"},
	)

	// Chart Metrics
	ChartsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_charts_rendered_total",
			Help: "Total number of charts handed to a renderer",
		},
		[]string{"chart"},
	)

	ChartRenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_chart_render_errors_total",
			Help: "Total number of charts the renderer rejected",
		},
		[]string{"chart"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "error_type"},
	)

	DBRowsMirrored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duckdb_rows_mirrored",
			Help: "Number of catalog rows copied into DuckDB",
		},
	)
)

// RecordQuery records the duration and outcome of an in-memory query.
func RecordQuery(query string, duration time.Duration, err error) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(query, errorType(err)).Inc()
	}
}

// RecordDBQuery records the duration and outcome of a DuckDB query.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, errorType(err)).Inc()
	}
}

// RecordChart records a chart hand-off to the renderer.
func RecordChart(chart string, err error) {
	if err != nil {
		ChartRenderErrors.WithLabelValues(chart).Inc()
		return
	}
	ChartsRendered.WithLabelValues(chart).Inc()
}

// errorType derives a bounded label from an error message.
// Wrapped errors keep their outermost prefix, which names the failure class.
func errorType(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ":"); i > 0 {
		msg = msg[:i]
	}
	if len(msg) > maxErrorLabel {
		msg = msg[:maxErrorLabel]
	}
	return msg
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
