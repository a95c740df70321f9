// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package models defines data structures shared across Steamlens.

Key Components:

  - Game: one catalog row with nullable wrappers for absent fields
  - Platform: the Mac, Windows and Linux support flags
  - Result types: ColumnType, NumericSummary, GroupSummary, GroupCount,
    GroupValue, YearCount, PlatformGrowth, PlatformShare, PlatformVotes

All result types carry JSON tags so the report command can serialize them
without intermediate DTOs. Statistics that are undefined for an empty subset
are NaN and must be read as "no data", never as zero.
*/
package models
