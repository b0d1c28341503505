/*
NAME
  raster.go

DESCRIPTION
  raster.go provides Raster, a rectangular RGBA8 pixel buffer with width,
  height and row stride, per specification §3. It is the boundary type
  between the core NTSC pipeline and the external image/video collaborators
  (ImageDecoder, FrameSource, FrameSink).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package raster provides the RGBA8 pixel buffer shared across the
// encoder, engine and the external device/sink collaborators.
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Raster is a rectangular RGBA8 pixel buffer. Pix is laid out row-major,
// four bytes per pixel (R, G, B, A), with Stride bytes between the start
// of consecutive rows (Stride may exceed Width*4 to allow for padding).
type Raster struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// New allocates a zeroed Raster of the given dimensions.
func New(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{
		Width:  w,
		Height: h,
		Stride: w * 4,
		Pix:    make([]byte, w*h*4),
	}
}

// BlueScreen returns a distinctive solid-blue placeholder Raster, used by
// the Runner in place of a frame a FrameSource failed to decode (spec.md
// §7, RuntimeDecodeFailure).
func BlueScreen(w, h int) *Raster {
	r := New(w, h)
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i+0] = 0x10
		r.Pix[i+1] = 0x10
		r.Pix[i+2] = 0xb0
		r.Pix[i+3] = 0xff
	}
	return r
}

func (r *Raster) offset(x, y int) int { return y*r.Stride + x*4 }

// At returns the RGBA colour at (x, y). Out-of-bounds reads return the
// zero colour.
func (r *Raster) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return color.RGBA{}
	}
	o := r.offset(x, y)
	return color.RGBA{R: r.Pix[o], G: r.Pix[o+1], B: r.Pix[o+2], A: r.Pix[o+3]}
}

// Set writes the RGBA colour at (x, y). Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	o := r.offset(x, y)
	r.Pix[o], r.Pix[o+1], r.Pix[o+2], r.Pix[o+3] = c.R, c.G, c.B, c.A
}

// SetBGRA writes a BGRA-ordered colour at (x, y), matching the byte order
// the engine's renderer produces (spec.md §4.3.3 step 5).
func (r *Raster) SetBGRA(x, y int, b, g, rr, a byte) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	o := r.offset(x, y)
	r.Pix[o], r.Pix[o+1], r.Pix[o+2], r.Pix[o+3] = rr, g, b, a
}

// Clear fills the Raster with opaque black.
func (r *Raster) Clear() {
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = 0
		r.Pix[i+1] = 0
		r.Pix[i+2] = 0
		r.Pix[i+3] = 0xff
	}
}

// Bounds returns the image.Rectangle covering the Raster, for interop with
// the standard image package.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// FromImage copies src (any standard library image.Image) into a new
// Raster, used by the file ImageDecoder fallback when gocv is unavailable.
func FromImage(src image.Image) *Raster {
	b := src.Bounds()
	r := New(b.Dx(), b.Dy())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			r.Set(x, y, c)
		}
	}
	return r
}

// Blit copies src into dst, centred, clipped to dst's bounds, matching the
// engine's final blit step (spec.md §4.3.1 step 8).
func Blit(dst, src *Raster, cx, cy int) {
	for y := 0; y < src.Height; y++ {
		dy := cy + y
		if dy < 0 || dy >= dst.Height {
			continue
		}
		for x := 0; x < src.Width; x++ {
			dx := cx + x
			if dx < 0 || dx >= dst.Width {
				continue
			}
			dst.Set(dx, dy, src.At(x, y))
		}
	}
}

// String implements fmt.Stringer for debug logging.
func (r *Raster) String() string {
	return fmt.Sprintf("Raster{%dx%d stride=%d}", r.Width, r.Height, r.Stride)
}
