// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tomtom215/steamlens/internal/models"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateCharts(); err != nil {
		return err
	}

	if err := c.validateReport(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDataset validates the dataset location
func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	return nil
}

// validateCharts validates chart output settings (only if enabled)
func (c *Config) validateCharts() error {
	if !c.Charts.Enabled {
		return nil
	}
	if c.Charts.OutputDir == "" {
		return fmt.Errorf("CHART_OUTPUT_DIR is required when CHARTS_ENABLED=true")
	}
	if len(c.Charts.FontFamilies) == 0 {
		return fmt.Errorf("CHART_FONT_FAMILIES must list at least one font")
	}
	return nil
}

// validateReport validates report parameters
func (c *Config) validateReport() error {
	if c.Report.OutputDir == "" {
		return fmt.Errorf("REPORT_OUTPUT_DIR is required")
	}
	if c.Report.TopN < 0 {
		return fmt.Errorf("REPORT_TOP_N must be non-negative, got %d", c.Report.TopN)
	}
	if c.Report.TopK < 0 {
		return fmt.Errorf("REPORT_TOP_K must be non-negative, got %d", c.Report.TopK)
	}
	if _, ok := models.ParsePlatform(c.Report.GrowthPlatform); !ok {
		return fmt.Errorf("REPORT_GROWTH_PLATFORM must be one of: Mac, Windows, Linux")
	}
	if c.Report.GrowthYearMin > c.Report.GrowthYearMax {
		return fmt.Errorf("REPORT_GROWTH_YEAR_MIN (%d) must not exceed REPORT_GROWTH_YEAR_MAX (%d)",
			c.Report.GrowthYearMin, c.Report.GrowthYearMax)
	}
	return nil
}

// duckdbMemoryPattern matches DuckDB memory limits such as "1GB" or "512 MiB".
var duckdbMemoryPattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s*(b|kb|mb|gb|tb|kib|mib|gib|tib)$`)

// validateDatabase validates the DuckDB mirror settings (only if enabled)
func (c *Config) validateDatabase() error {
	if !c.Database.Enabled {
		return nil
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when DUCKDB_ENABLED=true")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.MaxMemory != "" && !duckdbMemoryPattern.MatchString(c.Database.MaxMemory) {
		return fmt.Errorf("DUCKDB_MAX_MEMORY %q is not a valid size (e.g. 1GB, 512MB)", c.Database.MaxMemory)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
