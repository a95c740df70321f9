// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/steamlens/config.yaml",
	"/etc/steamlens/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "base/dataset/steam_games.csv",
		},
		Catalog: CatalogConfig{
			UnknownPublisher: "Unknown",
			MovieFill:        "No Movie",
		},
		Charts: ChartsConfig{
			Enabled:          true,
			OutputDir:        "out/charts",
			FontFamilies:     []string{"Noto Sans CJK JP", "Noto Sans CJK SC"},
			UnicodeMinus:     false,
			AllPlatformBonus: true,
		},
		Report: ReportConfig{
			OutputDir:      "out",
			TopN:           10,
			TopK:           5,
			GrowthPlatform: "Linux",
			GrowthYearMin:  2018,
			GrowthYearMax:  2022,
		},
		Database: DatabaseConfig{
			Enabled:                false,
			Path:                   ":memory:",
			MaxMemory:              "1GB",
			Threads:                0, // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Database.Threads == 0 {
		cfg.Database.Threads = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"charts.font_families",
	"report.publishers",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"dataset_path": "dataset.path",

	"unknown_publisher": "catalog.unknown_publisher",
	"movie_fill":        "catalog.movie_fill",

	"charts_enabled":           "charts.enabled",
	"chart_output_dir":         "charts.output_dir",
	"chart_font_families":      "charts.font_families",
	"chart_unicode_minus":      "charts.unicode_minus",
	"chart_all_platform_bonus": "charts.all_platform_bonus",

	"report_output_dir":      "report.output_dir",
	"report_top_n":           "report.top_n",
	"report_top_k":           "report.top_k",
	"report_publishers":      "report.publishers",
	"report_growth_platform": "report.growth_platform",
	"report_growth_year_min": "report.growth_year_min",
	"report_growth_year_max": "report.growth_year_max",

	"duckdb_enabled":                  "database.enabled",
	"duckdb_path":                     "database.path",
	"duckdb_max_memory":               "database.max_memory",
	"duckdb_threads":                  "database.threads",
	"duckdb_preserve_insertion_order": "database.preserve_insertion_order",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_textfile_path": "metrics.textfile_path",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DATASET_PATH -> dataset.path
//   - DUCKDB_PATH -> database.path
//   - CHART_OUTPUT_DIR -> charts.output_dir
//
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
