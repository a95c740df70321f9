// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package catalog

import (
	"context"
	"strings"
	"testing"
)

const sampleCSV = `AppID,Name,Release date,Estimated owners,Price,DLC count,Windows,Mac,Linux,Metacritic score,User score,Positive,Negative,Average playtime forever,Publishers,Genres,Categories,Movies,Screenshots
10,Counter-Strike,"Nov 1, 2000",10000000 - 20000000,9.99,0,True,True,True,88,0,124534,3339,17612,Valve,Action,Multi-player,http://m/10,http://s/10
20,Team Fortress Classic,"Apr 1, 1999",5000000 - 10000000,4.99,0,True,True,True,0,0,3318,633,277,Valve,Action,Multi-player,,http://s/20
30,Day of Defeat,"May 1, 2003",5000000 - 10000000,4.99,0,True,False,False,79,0,3416,398,187,,Action,Multi-player,http://m/30,
40,Old Game,not a date,0 - 20000,0,2,False,False,False,,7.5,10,5,,indie house,RPG,Single-player,,
`

func loadSample(t *testing.T) *Table {
	t.Helper()
	tbl, err := Load(context.Background(), strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return tbl
}
