// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"errors"
	"io"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestOSDistribution(t *testing.T) {
	t.Parallel()

	// Fixture: Alpha and Echo support all three, Bravo Windows, Charlie
	// Windows+Linux, Delta Mac, Foxtrot none.
	tests := []struct {
		name  string
		bonus bool
		votes []int
	}{
		{"with all-platform bonus", true, []int{5, 6, 5}},
		{"plain flag sums", false, []int{3, 4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := OSDistribution(catalogFixture(), tt.bonus)
			if err != nil {
				t.Fatalf("OSDistribution() error = %v", err)
			}
			total := 0
			for _, v := range tt.votes {
				total += v
			}
			var sum float64
			for i, share := range got {
				if share.Platform != models.Platforms[i] {
					t.Errorf("share %d platform = %s, want %s", i, share.Platform, models.Platforms[i])
				}
				if share.Votes != tt.votes[i] {
					t.Errorf("%s votes = %d, want %d", share.Platform, share.Votes, tt.votes[i])
				}
				want := float64(tt.votes[i]) / float64(total) * 100
				if math.Abs(float64(share.Percent)-want) > 1e-9 {
					t.Errorf("%s percent = %v, want %v", share.Platform, share.Percent, want)
				}
				sum += float64(share.Percent)
			}
			if math.Abs(sum-100) > 1e-9 {
				t.Errorf("percentages sum to %v", sum)
			}
		})
	}
}

func TestOSDistribution_NoSupportedGames(t *testing.T) {
	t.Parallel()

	got, err := OSDistribution(catalog.NewTable([]models.Game{{AppID: 1}}), true)
	if err != nil {
		t.Fatalf("OSDistribution() error = %v", err)
	}
	for _, share := range got {
		if share.Votes != 0 || !share.Percent.IsNaN() {
			t.Errorf("%s = %+v, want zero votes and NaN percent", share.Platform, share)
		}
	}
}

func TestOSVotes(t *testing.T) {
	t.Parallel()

	got, err := OSVotes(catalogFixture())
	if err != nil {
		t.Fatalf("OSVotes() error = %v", err)
	}
	want := []models.PlatformVotes{
		{Platform: models.PlatformMac, Votes: 3},
		{Platform: models.PlatformWindows, Votes: 4},
		{Platform: models.PlatformLinux, Votes: 3},
	}
	if !slices.Equal(got, want) {
		t.Errorf("OSVotes() = %v, want %v", got, want)
	}
}

func TestOSVotes_MissingPlatformColumn(t *testing.T) {
	t.Parallel()

	tbl, err := catalog.Load(t.Context(), stringsReader("AppID,Name,Mac,Windows\n1,A,True,True\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := OSVotes(tbl); !errors.Is(err, catalog.ErrUnknownColumn) {
		t.Errorf("error = %v, want ErrUnknownColumn", err)
	}
}

func TestQueryMetrics(t *testing.T) {
	errs := metrics.QueryErrors.WithLabelValues("top_n", "invalid query parameters")
	before := testutil.ToFloat64(errs)

	if _, err := TopN(catalogFixture(), models.ColPrice, -1); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(errs); got != before+1 {
		t.Errorf("query errors = %v, want %v", got, before+1)
	}
}
