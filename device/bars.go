/*
NAME
  bars.go

DESCRIPTION
  bars.go implements the ":bars[:/path/to/logo]" source named in
  spec.md §6: a static SMPTE colour-bars Raster, optionally composited
  with a logo image whose alpha channel becomes the mask, per spec.md
  §4.2's draw_smpte_bars.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package device

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/duskframe/ntsctv/raster"
)

// barsNominalW, barsNominalH are the default SMPTE bars canvas size
// named in spec.md §6.
const (
	barsNominalW = 320
	barsNominalH = 240
)

func newBarsSource(logoPath string) (FrameSource, error) {
	frame := raster.New(barsNominalW, barsNominalH)
	fillBars(frame)

	if logoPath != "" {
		logo, mask, err := loadLogo(logoPath)
		if err != nil {
			return nil, err
		}
		cx := (frame.Width - logo.Width) / 2
		cy := (frame.Height - logo.Height) / 2
		blitMasked(frame, logo, mask, cx, cy)
	}

	return &stillImageSource{frame: frame}, nil
}

// fillBars paints a simplified RGB rendering of the seven SMPTE colour
// bars directly. The Raster is encoded like any other frame; the
// NTSC-domain encoder.DrawSMPTEBars is not used by this source.
func fillBars(r *raster.Raster) {
	bars := []color.RGBA{
		{191, 191, 191, 255},
		{191, 191, 0, 255},
		{0, 191, 191, 255},
		{0, 191, 0, 255},
		{191, 0, 191, 255},
		{191, 0, 0, 255},
		{0, 0, 191, 255},
	}
	n := len(bars)
	for x := 0; x < r.Width; x++ {
		c := bars[x*n/r.Width]
		for y := 0; y < r.Height*68/100; y++ {
			r.Set(x, y, c)
		}
	}
}

func loadLogo(path string) (img, mask *raster.Raster, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, err
	}
	b := src.Bounds()
	img = raster.New(b.Dx(), b.Dy())
	mask = raster.New(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			img.Set(x, y, c)
			if c.A > 0 {
				mask.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img, mask, nil
}

func blitMasked(dst, src, mask *raster.Raster, cx, cy int) {
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
			mc := mask.At(x, y)
			if mc.R == 0 && mc.G == 0 && mc.B == 0 {
				continue
			}
			dst.Set(dx, dy, src.At(x, y))
		}
	}
}
