// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

// isolateEnv unsets every mapped variable and moves into an empty directory
// for the duration of the test, so no stray config leaks in.
func isolateEnv(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Unsetenv(%s) error = %v", name, err)
		}
	}
	t.Setenv(ConfigPathEnvVar, "")
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Dataset.Path != "base/dataset/steam_games.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Catalog.UnknownPublisher != "Unknown" || cfg.Catalog.MovieFill != "No Movie" {
		t.Errorf("Catalog fills = %q/%q", cfg.Catalog.UnknownPublisher, cfg.Catalog.MovieFill)
	}
	if !slices.Equal(cfg.Charts.FontFamilies, []string{"Noto Sans CJK JP", "Noto Sans CJK SC"}) {
		t.Errorf("Charts.FontFamilies = %v", cfg.Charts.FontFamilies)
	}
	if cfg.Charts.UnicodeMinus {
		t.Error("Charts.UnicodeMinus should be false by default")
	}
	if !cfg.Charts.AllPlatformBonus {
		t.Error("Charts.AllPlatformBonus should be true by default")
	}
	if cfg.Report.TopN != 10 || cfg.Report.TopK != 5 {
		t.Errorf("Report TopN/TopK = %d/%d, want 10/5", cfg.Report.TopN, cfg.Report.TopK)
	}
	if cfg.Report.GrowthPlatform != "Linux" || cfg.Report.GrowthYearMin != 2018 || cfg.Report.GrowthYearMax != 2022 {
		t.Errorf("growth window = %s %d-%d", cfg.Report.GrowthPlatform, cfg.Report.GrowthYearMin, cfg.Report.GrowthYearMax)
	}
	if cfg.Database.Enabled || cfg.Database.Path != ":memory:" {
		t.Errorf("Database = %+v, want disabled in-memory", cfg.Database)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"DATASET_PATH", "dataset.path"},
		{"DUCKDB_PATH", "database.path"},
		{"LOG_LEVEL", "logging.level"},
		{"CHART_OUTPUT_DIR", "charts.output_dir"},
		{"CHART_FONT_FAMILIES", "charts.font_families"},
		{"REPORT_GROWTH_YEAR_MIN", "report.growth_year_min"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	isolateEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yml exists", func(t *testing.T) {
		if err := os.WriteFile("config.yml", []byte("dataset: {}"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove("config.yml")

		if result := findConfigFile(); result != "config.yml" {
			t.Errorf("findConfigFile() = %q, want config.yml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := writeConfig(t, "dataset: {}")
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Database.Threads != runtime.NumCPU() {
		t.Errorf("Database.Threads = %d, want NumCPU %d", cfg.Database.Threads, runtime.NumCPU())
	}
	if cfg.Metrics.TextfilePath != "" {
		t.Errorf("Metrics.TextfilePath = %q, want empty", cfg.Metrics.TextfilePath)
	}
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)

	t.Setenv("DATASET_PATH", "/data/games.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_TOP_N", "25")
	t.Setenv("DUCKDB_ENABLED", "true")
	t.Setenv("CHART_FONT_FAMILIES", "DejaVu Sans, Noto Sans CJK KR")
	t.Setenv("REPORT_PUBLISHERS", "VALVE,UBISOFT")
	t.Setenv("CHART_ALL_PLATFORM_BONUS", "false")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Dataset.Path != "/data/games.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Report.TopN != 25 {
		t.Errorf("Report.TopN = %d, want 25", cfg.Report.TopN)
	}
	if !cfg.Database.Enabled {
		t.Error("Database.Enabled should be true")
	}
	if !slices.Equal(cfg.Charts.FontFamilies, []string{"DejaVu Sans", "Noto Sans CJK KR"}) {
		t.Errorf("Charts.FontFamilies = %v", cfg.Charts.FontFamilies)
	}
	if !slices.Equal(cfg.Report.Publishers, []string{"VALVE", "UBISOFT"}) {
		t.Errorf("Report.Publishers = %v", cfg.Report.Publishers)
	}
	if cfg.Charts.AllPlatformBonus {
		t.Error("Charts.AllPlatformBonus should be overridden to false")
	}

	// Defaults still apply for unset values
	if cfg.Database.MaxMemory != "1GB" {
		t.Errorf("Database.MaxMemory = %q, want 1GB (default)", cfg.Database.MaxMemory)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateEnv(t)

	t.Setenv(ConfigPathEnvVar, writeConfig(t, `
dataset:
  path: "/srv/steam.csv"

charts:
  output_dir: "/srv/charts"
  font_families:
    - "Noto Sans"

report:
  publishers: ["VALVE", "SEGA"]
  growth_platform: "Mac"

logging:
  level: "warn"
`))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Dataset.Path != "/srv/steam.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Charts.OutputDir != "/srv/charts" {
		t.Errorf("Charts.OutputDir = %q", cfg.Charts.OutputDir)
	}
	if !slices.Equal(cfg.Charts.FontFamilies, []string{"Noto Sans"}) {
		t.Errorf("Charts.FontFamilies = %v", cfg.Charts.FontFamilies)
	}
	if !slices.Equal(cfg.Report.Publishers, []string{"VALVE", "SEGA"}) {
		t.Errorf("Report.Publishers = %v", cfg.Report.Publishers)
	}
	if cfg.Report.GrowthPlatform != "Mac" {
		t.Errorf("Report.GrowthPlatform = %q", cfg.Report.GrowthPlatform)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Report.TopK != 5 {
		t.Errorf("Report.TopK = %d, want 5 (default)", cfg.Report.TopK)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	t.Setenv(ConfigPathEnvVar, writeConfig(t, `
dataset:
  path: "/from/file.csv"
logging:
  level: "warn"
`))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DUCKDB_PATH", "/custom/steam.duckdb")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Dataset.Path != "/from/file.csv" {
		t.Errorf("Dataset.Path = %q, want /from/file.csv (from file)", cfg.Dataset.Path)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
	if cfg.Database.Path != "/custom/steam.duckdb" {
		t.Errorf("Database.Path = %q, want /custom/steam.duckdb (env override)", cfg.Database.Path)
	}
}

// TestLoadWithKoanfValidation tests that invalid layered values are rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad platform", map[string]string{"REPORT_GROWTH_PLATFORM": "Amiga"}, "REPORT_GROWTH_PLATFORM"},
		{"inverted window", map[string]string{"REPORT_GROWTH_YEAR_MIN": "2023"}, "REPORT_GROWTH_YEAR_MIN"},
		{"bad memory", map[string]string{"DUCKDB_ENABLED": "true", "DUCKDB_MAX_MEMORY": "lots"}, "DUCKDB_MAX_MEMORY"},
		{"negative top n", map[string]string{"REPORT_TOP_N": "-3"}, "REPORT_TOP_N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
