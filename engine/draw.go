/*
NAME
  draw.go

DESCRIPTION
  draw.go implements Draw, the per-frame TVEngine pipeline described by
  spec.md §4.3.1: AGC preparation, signal assembly, sync recovery, knob
  integration, level-table recomputation, CRT-load smoothing, line
  rendering and the final blit into the caller's output Raster.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import (
	"math"

	"github.com/duskframe/ntsctv/dsp"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

// Draw renders one frame from noiseLevel and recs into out, per spec.md
// §4.3.1. If Configure has not been called yet, Draw calls it with out's
// width and height.
func (e *TVEngine) Draw(noiseLevel float32, recs []signal.Reception, out *raster.Raster) {
	if e.crtImage == nil {
		e.Configure(out.Width, out.Height)
	}

	e.frameCount++
	e.frameRandom0 = e.rng.Next()
	e.frameRandom1 = e.rng.Next()

	e.channelChangeCycles = e.Knobs.ChannelChangeCycles
	e.Knobs.ChannelChangeCycles = 0

	e.updateDisturbances()

	e.AGCLevel = e.prepareAGC(noiseLevel, recs)
	e.assembleSignal(noiseLevel, recs)
	e.sync()

	fc := e.computeFrameControls()
	avgheight := fc.puheight * float64(e.UseHeight) / float64(e.Geo.VisLines)
	e.computeLevelTable(avgheight)

	e.updateCRTLoad(e.Knobs.SqueezeBottom)

	if e.firstFrame {
		e.crtImage.Clear()
		e.firstFrame = false
	}
	e.renderLines(fc)

	cx := (out.Width - e.UseWidth) / 2
	cy := (out.Height - e.UseHeight) / 2
	raster.Blit(out, e.crtImage, cx, cy)
}

// updateDisturbances implements the periodic disturbance models named in
// spec.md §4.4: when FlutterHorizDesync is set, HorizDesync drifts by a
// slow random walk each frame instead of holding the controller's set
// value steady; when HashnoiseOn is set, roughly 1 frame in 200 fires a
// shrinkpulse that halves one random line's rendered height for that
// frame only (spec.md §9).
func (e *TVEngine) updateDisturbances() {
	if e.Knobs.FlutterHorizDesync {
		e.flutterPhase += 0.037
		step := dsp.ToUniform(e.rng.Next(), -0.3, 0.3)
		e.Knobs.HorizDesync += step + 0.2*math.Sin(e.flutterPhase)
		if e.Knobs.HorizDesync < -5 {
			e.Knobs.HorizDesync = -5
		}
		if e.Knobs.HorizDesync > 5 {
			e.Knobs.HorizDesync = 5
		}
	}

	e.shrinkPulseLine = -1
	if e.Knobs.HashnoiseOn && e.rng.Next()%200 == 0 {
		span := e.Geo.Bot - e.Geo.TOP
		if span > 0 {
			e.shrinkPulseLine = e.Geo.TOP + int(e.rng.Next()%uint32(span))
		}
	}
}
