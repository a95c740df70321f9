// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// FileName is the name of the report document inside the output directory.
const FileName = "report.json"

// Write encodes rep as indented JSON into dir/report.json and returns the path.
// The file is written to a temporary name first and renamed into place.
func Write(dir string, rep *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(dir, FileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to move report into place: %w", err)
	}
	return path, nil
}

// Read decodes a report previously written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is operator-provided
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &rep, nil
}
