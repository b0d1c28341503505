/*
NAME
  sync.go

DESCRIPTION
  sync.go implements SetupSync, which draws the sync, back porch, picture
  and front porch scaffold plus colourburst for every line of an
  InputSignal, per specification §4.1.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package encoder

import "github.com/duskframe/ntsctv/signal"

// SetupSync fills sig with the sync/back-porch/picture/front-porch
// scaffold for every line, and (if doCB) the colourburst. doSSAVI
// inverts the sync level to simulate a Super Static AVI style positive
// sync, per spec.md §4.1.
func (e *SourceEncoder) SetupSync(sig *signal.InputSignal, doCB, doSSAVI bool) {
	g := e.Geo
	syncLevel := signal.Sync
	if doSSAVI {
		syncLevel = signal.White
	}

	for y := 0; y < g.V; y++ {
		vsync := 3 <= y && y < 7

		// SYNC_START..BP_START
		lvl := syncLevel
		if vsync {
			lvl = signal.Blank
		}
		fillRange(sig, y, g.SyncStart, g.BPStart, lvl)

		// BP_START..PIC_START
		lvl = signal.Blank
		if vsync {
			lvl = syncLevel
		}
		fillRange(sig, y, g.BPStart, g.PicStart, lvl)

		// PIC_START..FP_START
		fillRange(sig, y, g.PicStart, g.FPStart, signal.Black)
		// FP_START..H
		fillRange(sig, y, g.FPStart, g.H, signal.Blank)

		if doCB {
			drawColourburst(sig, g, y)
		}
	}
	sig.WrapRow()
}

// drawColourburst adds the 9-cycle colourburst starting at CB_START: for
// each group of 4 samples, +CB is added to sample i+1 and -CB to sample
// i+3 (spec.md §4.1).
func drawColourburst(sig *signal.InputSignal, g signal.Geometry, y int) {
	const cycles = 9
	for c := 0; c < cycles; c++ {
		base := g.CBStart + c*4
		if base+3 >= g.H {
			break
		}
		sig.Set(y, base+1, clamp8(int(sig.At(y, base+1))+int(signal.CB)))
		sig.Set(y, base+3, clamp8(int(sig.At(y, base+3))-int(signal.CB)))
	}
}

func fillRange(sig *signal.InputSignal, y, from, to int, v int8) {
	if from < 0 {
		from = 0
	}
	if to > sig.Geo.H {
		to = sig.Geo.H
	}
	for x := from; x < to; x++ {
		sig.Set(y, x, v)
	}
}

func clamp8(v int) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}
