/*
NAME
  bars.go

DESCRIPTION
  bars.go implements DrawSMPTEBars: seven top bars, seven middle bars and
  a PLUGE-style footer, with an optional centred logo composited via
  LoadXImage, per specification §4.2.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package encoder

import (
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

// barLCP is one bar's (luma, chroma, phase) triple.
type barLCP struct {
	l, c, phase float64
}

// topBars are the seven SMPTE top bars (rel y 0.00-0.68), left to right.
var topBars = []barLCP{
	{75, 0, 0},      // gray
	{69, 31, 167},   // yellow
	{56, 44, 283.5}, // cyan
	{48, 41, 240.5}, // green
	{36, 41, 60.5},  // magenta
	{28, 44, 103.5}, // red
	{15, 31, 347},   // blue
}

// midBars are the seven middle bars (rel y 0.68-0.75).
var midBars = []barLCP{
	{15, 31, 347},   // blue
	{7, 0, 0},       // black
	{36, 41, 60.5},  // magenta
	{7, 0, 0},       // black
	{56, 44, 283.5}, // cyan
	{7, 0, 0},       // black
	{75, 0, 0},      // gray
}

// DrawSMPTEBars draws the standard SMPTE colour bars test pattern into
// sig, optionally compositing logo (sized relative to an (outW, outH)
// final output frame), centred over the pattern, via LoadXImage, per
// spec.md §4.2.
func (e *SourceEncoder) DrawSMPTEBars(sig *signal.InputSignal, logo *raster.Raster, outW, outH int) {
	e.drawBarRow(sig, topBars, 0.00, 0.68)
	e.drawBarRow(sig, midBars, 0.68, 0.75)
	e.drawFooter(sig)

	if logo != nil {
		lw, lh := logo.Width, logo.Height
		xoff := (outW - lw) / 2
		yoff := (outH - lh) / 2
		e.LoadXImage(sig, logo, nil, xoff, yoff, lw, lh, outW, outH)
	}
}

func (e *SourceEncoder) drawBarRow(sig *signal.InputSignal, bars []barLCP, top, bot float64) {
	n := len(bars)
	for i, b := range bars {
		left := float64(i) / float64(n)
		right := float64(i+1) / float64(n)
		e.DrawSolidRelLCP(sig, left, right, top, bot, b.l, b.c, b.phase)
	}
}

// drawFooter draws the 0.75-1.00 PLUGE-style footer row described in
// spec.md §4.2: -I, white, +Q, black, a black-4/black/black+4 PLUGE
// triplet, and a final black segment.
func (e *SourceEncoder) drawFooter(sig *signal.InputSignal) {
	const top, bot = 0.75, 1.00

	e.DrawSolidRelLCP(sig, 0.0/6, 1.0/6, top, bot, 7, 40, 303)
	e.DrawSolidRelLCP(sig, 1.0/6, 2.0/6, top, bot, 100, 0, 0)
	e.DrawSolidRelLCP(sig, 2.0/6, 3.0/6, top, bot, 7, 40, 33)
	e.DrawSolidRelLCP(sig, 3.0/6, 4.0/6, top, bot, 7, 0, 0)

	// PLUGE triplet: black-4, black, black+4, each one third of the
	// 12/18-15/18 slice.
	plugeStart, plugeEnd := 12.0/18, 15.0/18
	third := (plugeEnd - plugeStart) / 3
	e.DrawSolidRelLCP(sig, plugeStart, plugeStart+third, top, bot, 3, 0, 0)
	e.DrawSolidRelLCP(sig, plugeStart+third, plugeStart+2*third, top, bot, 7, 0, 0)
	e.DrawSolidRelLCP(sig, plugeStart+2*third, plugeEnd, top, bot, 11, 0, 0)

	e.DrawSolidRelLCP(sig, 5.0/6, 1.0, top, bot, 7, 0, 0)
}
