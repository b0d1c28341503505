/*
NAME
  render.go

DESCRIPTION
  render.go implements spec.md §4.3.3: per-line demodulation
  (ntsc_to_yiq), resampling and colour conversion, and vertical
  replication into the CRT raster, plus the driving per-frame loop
  over [TOP, BOT) described in §4.3.1 step 7.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import (
	"math"

	"github.com/duskframe/ntsctv/dsp"
	"github.com/duskframe/ntsctv/signal"
)

// yiqSample is one demodulated (Y, I, Q) triple at a single composite
// sample position.
type yiqSample struct {
	y, i, q float64
}

// rgbPixel is one resampled, colour-converted output pixel, held in the
// renderer's native floating range before the level-table intensity scale
// and gamma LUT are applied in blitRows.
type rgbPixel struct {
	r, g, b float64
	set     bool
}

// renderLines renders every NTSC line in [TOP, Bot) into e.crtImage,
// partitioned across the worker pool; per spec.md §5, rendering threads
// write disjoint row ranges so no synchronisation beyond the join is
// needed.
func (e *TVEngine) renderLines(fc frameControls) {
	geo := e.Geo
	if e.crtImage == nil {
		return
	}

	scale := fc.puheight * float64(e.UseHeight) / float64(geo.VisLines)
	windowTop := float64(e.UseHeight) * (1 - fc.puheight) / 2

	// Precompute the (ytop, ybot) output-row range for every line up
	// front; each line's range depends only on its own index, so the
	// work below can run out of order.
	ytops := make([]int, geo.Bot-geo.TOP+1)
	accum := windowTop
	for i := range ytops {
		ytops[i] = int(math.Round(accum))
		accum += scale
	}

	runParallel(e.workers, geo.Bot-geo.TOP, func(k int) {
		l := geo.TOP + k
		ytop, ybot := ytops[k], ytops[k+1]
		if ybot <= ytop {
			return
		}
		if l == e.shrinkPulseLine {
			ybot = ytop + (ybot-ytop+1)/2
		}
		e.renderLine(l, ytop, ybot, fc)
	})
}

// renderLine implements spec.md §4.3.3 for a single NTSC line l, emitting
// ybot-ytop output rows into e.crtImage.
func (e *TVEngine) renderLine(l, ytop, ybot int, fc frameControls) {
	geo := e.Geo
	height := ybot - ytop
	if height > len(e.LevelTable)-1 {
		height = len(e.LevelTable) - 1
	}

	crtload := e.CRTLoad[l%len(e.CRTLoad)]
	bloom := clampF(-10*crtload, -10, 2)

	var shift float64
	if l < geo.TOP+16 {
		shift = e.Knobs.HorizDesync * math.Exp(-0.17*float64(l-geo.TOP)) * (0.7 + math.Cos(float64(l-geo.TOP)*0.6))
	}

	viswidth := float64(geo.PicLen)*0.79 - 5*bloom
	middle := float64(geo.PicLen)/2 - shift
	scanwidth := e.Knobs.Width * ramp(e.Knobs.Powerup, 0.5, 0.3, 1)
	subwidth := float64(e.UseWidth)
	scw := math.Min(subwidth*scanwidth, float64(e.UseWidth))
	scl := subwidth/2 - scw/2
	scr := scl + scw

	pixrate := ((viswidth * 65536) / subwidth) / scanwidth
	scanstart := (middle - viswidth/2) * 65536
	scanend := float64(geo.PicLen-1) * 65536
	squishright := (middle + viswidth*(0.25+0.25*ramp(e.Knobs.Powerup, 2, 0, 1.1)-e.Knobs.Squish)) * 65536
	squishdiv := subwidth / 15
	if squishdiv == 0 {
		squishdiv = 1
	}

	left := int(scanstart/65536) - 10
	right := int(scanend/65536) + 10

	sigOfs := e.LineHSync[l] + geo.PicStart
	yiq := e.ntscToYIQ(l, sigOfs, left, right, fc)

	pixbright := e.Knobs.Contrast * ramp(e.Knobs.Powerup, 1, 0, 1) / (0.5 + 0.5*fc.puheight) * 10.24

	brightness := e.Knobs.Brightness*100 - float64(signal.Black)

	row := make([]rgbPixel, e.UseWidth)
	i := scanstart
	pixmultinc := pixrate
	pb := pixbright
	for x := 0; x < e.UseWidth; x++ {
		if float64(x) < scl || float64(x) >= scr {
			i += pixmultinc
			continue
		}
		pati := int(i) >> 16
		frac := float64(int(i)&0xFFFF) / 65536
		idx := pati - left
		if idx < 0 {
			idx = 0
		}
		if idx >= len(yiq)-1 {
			idx = len(yiq) - 2
		}
		if idx < 0 {
			idx = 0
		}
		var y, iv, qv float64
		if idx+1 < len(yiq) {
			a, b := yiq[idx], yiq[idx+1]
			y = a.y + (b.y-a.y)*frac
			iv = a.i + (b.i-a.i)*frac
			qv = a.q + (b.q-a.q)*frac
		}
		y += brightness

		r := (y + 0.948*iv + 0.624*qv) * pb
		g := (y - 0.276*iv - 0.639*qv) * pb
		bl := (y - 1.105*iv + 1.729*qv) * pb
		row[x] = rgbPixel{r: math.Max(0, r), g: math.Max(0, g), b: math.Max(0, bl), set: true}

		if i >= squishright {
			pixmultinc += pixmultinc / squishdiv
			pb += pb / (2 * squishdiv)
		}
		i += pixmultinc
	}

	e.blitRows(ytop, ybot, height, row)
}

// ntscToYIQ demodulates rx_signal around line l's sig_ofs over sample
// indices [left, right], returning one (Y, I, Q) sample per index, per
// spec.md §4.3.3 step 3.
func (e *TVEngine) ntscToYIQ(l, sigOfs, left, right int, fc frameControls) []yiqSample {
	phasecorr := sigOfs & 3
	cbp := e.LineCBPhase[l%len(e.LineCBPhase)]
	cbI := (cbp[(2+phasecorr)&3] - cbp[(0+phasecorr)&3]) / 16
	cbQ := (cbp[(3+phasecorr)&3] - cbp[(1+phasecorr)&3]) / 16

	colormode := cbI*cbI+cbQ*cbQ > 2.8

	var multiq2 [4]float64
	if colormode {
		multiq2[0] = (cbI*fc.tintI - cbQ*fc.tintQ) * e.Knobs.Color
		multiq2[1] = (cbQ*fc.tintI + cbI*fc.tintQ) * e.Knobs.Color
		multiq2[2] = -multiq2[0]
		multiq2[3] = -multiq2[1]
	}

	n := len(e.RxSignal)
	out := make([]yiqSample, right-left+2)

	var yf dsp.YFilter
	var ifl dsp.IFilter
	var qf dsp.QFilter

	for k := range out {
		i := left + k
		idx := sigOfs + i
		idx = ((idx % n) + n) % n
		raw := int64(math.Round(float64(e.RxSignal[idx])))

		y := yf.Step(raw)
		var fi, fq int64
		if colormode {
			rawI := int64(math.Round(float64(raw) * multiq2[i&3]))
			rawQ := int64(math.Round(float64(raw) * multiq2[(i+1)&3]))
			fi = ifl.Step(rawI)
			fq = qf.Step(rawQ)
		}
		out[k] = yiqSample{y: float64(y), i: float64(fi), q: float64(fq)}
	}
	return out
}

// blitRows writes the resampled row into height output rows of
// e.crtImage starting at ytop, using the level table to select each
// row's brightness scale per spec.md §4.3.3 step 5.
func (e *TVEngine) blitRows(ytop, ybot, height int, row []rgbPixel) {
	if height < 0 || height >= len(e.LevelTable) {
		return
	}
	entries := e.LevelTable[height]
	for y := ytop; y < ybot; y++ {
		if y < 0 || y >= e.UseHeight {
			continue
		}
		entry := entries[y-ytop]
		for x, px := range row {
			if !px.set {
				continue
			}
			rr := e.gammaByte(px.r, entry.Value)
			gg := e.gammaByte(px.g, entry.Value)
			bb := e.gammaByte(px.b, entry.Value)
			e.crtImage.SetBGRA(x, y, bb, gg, rr, 0xff)
		}
	}
}

// gammaByte scales v by the level-table value, looks the result up in the
// 1024-entry gamma LUT (whose entries are already shifted down by 8) and
// returns that value clamped to 255.
func (e *TVEngine) gammaByte(v, value float64) byte {
	idx := int(math.Round(v * value))
	if idx < 0 {
		idx = 0
	}
	if idx > 1023 {
		idx = 1023
	}
	lv := e.IntensityValues[idx]
	if lv > 255 {
		lv = 255
	}
	return byte(lv)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
