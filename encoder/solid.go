/*
NAME
  solid.go

DESCRIPTION
  solid.go implements DrawSolidRelLCP, which fills a relative rectangle of
  the visible window with a solid luma/chroma/phase colour, per
  specification §4.2.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package encoder

import (
	"math"

	"github.com/duskframe/ntsctv/signal"
)

// DrawSolidRelLCP maps the relative rectangle (left, right, top, bot), each
// in [0,1], into the visible window (VIS_START, VIS_LEN) x (TOP, VISLINES),
// converts (luma, chroma, phase) to four repeating NTSC samples, and fills
// the rectangle with them, per spec.md §4.2.
func (e *SourceEncoder) DrawSolidRelLCP(sig *signal.InputSignal, left, right, top, bot, luma, chroma, phase float64) {
	g := e.Geo
	visLen := g.VisEnd - g.VisStart

	x0 := g.VisStart + int(left*float64(visLen))
	x1 := g.VisStart + int(right*float64(visLen))
	y0 := g.TOP + int(top*float64(g.VisLines))
	y1 := g.TOP + int(bot*float64(g.VisLines))

	var n [4]int8
	for k := 0; k < 4; k++ {
		v := luma + chroma*math.Cos((90*float64(k)+phase)*math.Pi/180)
		if v < 0 {
			v = 0
		}
		if v > 127 {
			v = 127
		}
		n[k] = int8(v)
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sig.Set(y, x, n[x&3])
		}
	}
}
