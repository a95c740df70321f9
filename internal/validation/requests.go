// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

// TopNRequest bounds a ranking query.
type TopNRequest struct {
	Column string `validate:"required,catalogcolumn"`
	N      int    `validate:"gte=0"`
}

// SortKeyRequest names one key of a multi-key ranking.
type SortKeyRequest struct {
	Column string `validate:"required,catalogcolumn"`
}

// MultiKeyRequest bounds a ranking over several sort keys.
type MultiKeyRequest struct {
	Keys []SortKeyRequest `validate:"required,min=1,dive"`
	N    int              `validate:"gte=0"`
}

// YearWindow is an inclusive calendar-year range.
type YearWindow struct {
	YearMin int `validate:"gte=1900,lte=2200"`
	YearMax int `validate:"gtefield=YearMin,lte=2200"`
}

// PlatformWindow is a YearWindow restricted to one platform.
type PlatformWindow struct {
	Platform string `validate:"required,platform"`
	YearWindow
}

// TopKRequest bounds a group-frequency query.
type TopKRequest struct {
	GroupColumn string `validate:"required,catalogcolumn"`
	K           int    `validate:"gte=0"`
}

// GroupRequest names a grouping column and the numeric column aggregated per group.
type GroupRequest struct {
	GroupColumn string `validate:"required,catalogcolumn"`
	ValueColumn string `validate:"required,catalogcolumn"`
}
