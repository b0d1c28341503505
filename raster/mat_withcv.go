//go:build withcv
// +build withcv

/*
NAME
  mat_withcv.go

DESCRIPTION
  mat_withcv.go converts between Raster and gocv.Mat at the boundary where
  the core pipeline meets gocv-backed devices and sinks. Built only when
  the withcv tag (and a working OpenCV/gocv install) is present, mirroring
  the teacher's own filter/*.go withcv-gated files.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package raster

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"
)

// FromMat copies a BGR or BGRA gocv.Mat into a new RGBA Raster.
func FromMat(m gocv.Mat) (*Raster, error) {
	if m.Empty() {
		return nil, fmt.Errorf("raster: cannot convert empty Mat")
	}
	w, h := m.Cols(), m.Rows()
	r := New(w, h)
	channels := m.Channels()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch channels {
			case 1:
				v, _ := m.GetUCharAt(y, x)
				r.Set(x, y, rgbaGray(v))
			case 3:
				b, _ := m.GetUCharAt3(y, x, 0)
				g, _ := m.GetUCharAt3(y, x, 1)
				rr, _ := m.GetUCharAt3(y, x, 2)
				r.Set(x, y, rgbaBGR(b, g, rr))
			default:
				b, _ := m.GetUCharAt3(y, x, 0)
				g, _ := m.GetUCharAt3(y, x, 1)
				rr, _ := m.GetUCharAt3(y, x, 2)
				r.Set(x, y, rgbaBGR(b, g, rr))
			}
		}
	}
	return r, nil
}

// ToMat converts a Raster into a new 3-channel BGR gocv.Mat, the layout
// gocv.VideoWriter and gocv.Window expect.
func (r *Raster) ToMat() (gocv.Mat, error) {
	m := gocv.NewMatWithSize(r.Height, r.Width, gocv.MatTypeCV8UC3)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := r.At(x, y)
			m.SetUCharAt3(y, x, 0, c.B)
			m.SetUCharAt3(y, x, 1, c.G)
			m.SetUCharAt3(y, x, 2, c.R)
		}
	}
	return m, nil
}

func rgbaBGR(b, g, rr byte) color.RGBA { return color.RGBA{R: rr, G: g, B: b, A: 0xff} }
func rgbaGray(v byte) color.RGBA       { return color.RGBA{R: v, G: v, B: v, A: 0xff} }
