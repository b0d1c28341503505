/*
NAME
  leveltable.go

DESCRIPTION
  leveltable.go computes the scan-line level table described by
  specification §4.3.4: for each possible rendered line height h, which
  of the h output rows get which of three brightness "bands" (index 0, 1
  or 2), used by the vertical-replication step of render_line.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import "github.com/duskframe/ntsctv/signal"

// levelfac gives the per-index brightness offset named in spec.md §4.3.4.
var levelfac = [3]float64{-7.5, 5.5, 24.5}

// computeLevelTable recomputes LevelTable for the given avgheight
// (puheight * useheight / VISLINES), per spec.md §4.3.4.
func (e *TVEngine) computeLevelTable(avgheight float64) {
	maxH := int(avgheight) + 2
	if maxH > signal.MaxLineHeight {
		maxH = signal.MaxLineHeight
	}

	rampVal := ramp(e.Knobs.Powerup, 3, 6, 1)

	for h := 0; h <= maxH; h++ {
		for i := 0; i < h; i++ {
			e.LevelTable[h][i] = LevelEntry{Index: 2}
		}
		if avgheight >= 3 && h >= 1 {
			e.LevelTable[h][0].Index = 0
		}
		if avgheight >= 5 && h >= 1 {
			e.LevelTable[h][h-1].Index = 0
		}
		if avgheight >= 7 {
			if h >= 2 {
				e.LevelTable[h][1].Index = 1
			}
			if h >= 2 {
				e.LevelTable[h][h-2].Index = 1
			}
		}
		for i := 0; i < h; i++ {
			idx := e.LevelTable[h][i].Index
			e.LevelTable[h][i].Value = (40 + levelfac[idx]*rampVal) / 256
		}
	}
}
