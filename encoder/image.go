/*
NAME
  image.go

DESCRIPTION
  image.go implements LoadXImage, converting a source Raster (and optional
  mask) into NTSC composite samples written into an InputSignal, per
  specification §4.2.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package encoder

import (
	"math"

	"github.com/duskframe/ntsctv/dsp"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

// yOverscanFactor matches the y_overscan = 5*S named in spec.md §4.2 step 1.
const yOverscanFactor = 5

// LoadXImage rasterises pic (and, if mask is non-nil, skips columns where
// mask is opaque-black — spec.md's "not black is opaque" quirk is
// preserved deliberately, see DESIGN.md) into sig at NTSC offset
// (xoff, yoff), scaled so that a (target_w, target_h) region of an
// (out_w, out_h) final output frame is covered.
func (e *SourceEncoder) LoadXImage(sig *signal.InputSignal, pic, mask *raster.Raster, xoff, yoff, targetW, targetH, outW, outH int) {
	g := e.Geo
	yOverscan := yOverscanFactor * g.S

	xLength := g.PicLen * targetW / outW
	if xLength > g.PicLen {
		xLength = g.PicLen
	}
	yScanlength := (g.VisLines + 2*yOverscan) * targetH / outH
	xoffN := g.PicLen * xoff / outW
	yoffN := (g.VisLines + 2*yOverscan) * yoff / outH

	if xLength <= 0 || yScanlength <= 0 || pic.Width == 0 || pic.Height == 0 {
		return
	}

	multiq := make([]int64, xLength+4)
	for i := range multiq {
		theta := -math.Cos(math.Pi * (90*(1-float64(i)) - 303) / 180)
		multiq[i] = int64(math.Round(theta * 4096))
	}

	var filt dsp.YIQFilters
	for y := 0; y < yScanlength; y++ {
		picy1 := y * pic.Height / yScanlength
		picy2 := (y*pic.Height + yScanlength/2) / yScanlength
		if picy2 >= pic.Height {
			picy2 = pic.Height - 1
		}

		filt.Reset()
		destY := y - yOverscan + g.TOP + yoffN
		for x := 0; x < xLength; x++ {
			picx := x * pic.Width / xLength
			if mask != nil {
				mc := mask.At(picx, picy1)
				if mc.R == 0 && mc.G == 0 && mc.B == 0 {
					// Advance the filter state with a zero sample so the
					// line's filter phase stays consistent, but do not write.
					filt.Step(0, 0, 0)
					continue
				}
			}

			c1 := pic.At(picx, picy1)
			c2 := pic.At(picx, picy2)
			r1, g1, b1 := int64(c1.R), int64(c1.G), int64(c1.B)
			r2, g2, b2 := int64(c2.R), int64(c2.G), int64(c2.B)

			rawY := (5*r1 + 11*g1 + 2*b1 + 5*r2 + 11*g2 + 2*b2) >> 7
			rawI := (10*r1 - 4*g1 - 5*b1 + 10*r2 - 4*g2 - 5*b2) >> 7
			rawQ := (3*r1 - 8*g1 + 5*b1 + 3*r2 - 8*g2 + 5*b2) >> 7

			fy, fi, fq := filt.Step(rawY, rawI, rawQ)

			c := fy + ((multiq[x]*fi + multiq[x+3]*fq) >> 12)
			c = (c * 100 >> 14) + int64(signal.Black)
			if c < 0 {
				c = 0
			}
			if c > 125 {
				c = 125
			}

			destX := x + g.PicStart + xoffN
			sig.Set(destY, destX, int8(c))
		}
	}
}
