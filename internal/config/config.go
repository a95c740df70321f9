// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

// Config holds all application configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Charts   ChartsConfig   `koanf:"charts"`
	Report   ReportConfig   `koanf:"report"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// DatasetConfig locates the catalog CSV.
type DatasetConfig struct {
	Path string `koanf:"path"`
}

// CatalogConfig holds normalization defaults.
type CatalogConfig struct {
	// UnknownPublisher replaces missing publisher names.
	UnknownPublisher string `koanf:"unknown_publisher"`

	// MovieFill replaces missing movie links.
	MovieFill string `koanf:"movie_fill"`
}

// ChartsConfig holds chart styling and output settings.
type ChartsConfig struct {
	Enabled      bool     `koanf:"enabled"`
	OutputDir    string   `koanf:"output_dir"`
	FontFamilies []string `koanf:"font_families"`
	UnicodeMinus bool     `koanf:"unicode_minus"`

	// AllPlatformBonus keeps the historical double count of games that
	// support every platform in the distribution pie.
	AllPlatformBonus bool `koanf:"all_platform_bonus"`
}

// ReportConfig parameterizes the report command.
type ReportConfig struct {
	OutputDir string `koanf:"output_dir"`
	TopN      int    `koanf:"top_n"`
	TopK      int    `koanf:"top_k"`

	// Publishers lists the publishers summarized by positive reviews.
	// Empty means the TopK publishers by paid game count.
	Publishers []string `koanf:"publishers"`

	GrowthPlatform string `koanf:"growth_platform"`
	GrowthYearMin  int    `koanf:"growth_year_min"`
	GrowthYearMax  int    `koanf:"growth_year_max"`
}

// DatabaseConfig holds DuckDB mirror settings.
type DatabaseConfig struct {
	Enabled                bool   `koanf:"enabled"`
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	// TextfilePath is where the report writes Prometheus metrics for the
	// node_exporter textfile collector. Empty disables the export.
	TextfilePath string `koanf:"textfile_path"`
}
