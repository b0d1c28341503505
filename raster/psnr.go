/*
NAME
  psnr.go

DESCRIPTION
  psnr.go provides a PSNR helper for the end-to-end golden-frame scenarios
  of spec.md §8 ("looks right" is quantified as PSNR >= 25 dB against a
  recorded golden). It lives outside the core engine since PSNR is a test
  concern, not a rendering concern.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package raster

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PSNR computes the peak signal-to-noise ratio in dB between two Rasters
// of identical dimensions, over the R, G and B channels (alpha is
// ignored). It returns +Inf if the two Rasters are pixel-identical.
func PSNR(a, b *Raster) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, errors.New("raster: PSNR requires equal dimensions")
	}
	n := a.Width * a.Height * 3
	if n == 0 {
		return 0, errors.New("raster: PSNR requires non-empty rasters")
	}
	sq := make([]float64, 0, n)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			ca := a.At(x, y)
			cb := b.At(x, y)
			sq = append(sq,
				sqDiff(ca.R, cb.R),
				sqDiff(ca.G, cb.G),
				sqDiff(ca.B, cb.B),
			)
		}
	}
	mse := stat.Mean(sq, nil)
	if mse == 0 {
		return math.Inf(1), nil
	}
	const maxVal = 255.0
	return 10 * math.Log10(maxVal*maxVal/mse), nil
}

func sqDiff(a, b byte) float64 {
	d := float64(a) - float64(b)
	return d * d
}
