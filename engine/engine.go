/*
NAME
  engine.go

DESCRIPTION
  engine.go provides TVEngine, the demodulator and renderer: it owns the
  receiver signal buffer, AGC state, sync trackers, colourburst phase,
  scan-line level tables and intensity LUT, per specification §3 and §4.3.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package engine implements TVEngine, the NTSC receiver: sync recovery,
// demodulation and CRT-style rendering described in spec.md §4.3.
package engine

import (
	"math"

	"github.com/duskframe/ntsctv/dsp"
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

// Knobs is the public control surface the Controller writes before every
// Draw call, per spec.md §4.4.
type Knobs struct {
	Tint          float64 // degrees, default 5
	Color         float64 // default 0.70
	Brightness    float64 // default 0.02
	Contrast      float64 // default 1.50
	Height        float64 // default 1.0
	Width         float64 // default 1.0
	Squish        float64 // default 0.0
	HorizDesync   float64 // [-5, 5]
	SqueezeBottom float64 // [-1, 4]
	Powerup       float64 // seconds since power-on; >=900 means fully on

	ChannelChangeCycles int // 0 or 200000; consumed by the next Draw call

	// FlutterHorizDesync enables a slow per-frame random walk added to
	// HorizDesync (spec.md §4.4: "horiz_desync drifts"), applied in
	// Draw rather than overwriting the controller-set HorizDesync value.
	FlutterHorizDesync bool
	// HashnoiseOn enables the shrinkpulse disturbance (spec.md §4.4/§9:
	// "shrinkpulse may fire... occasionally shorten puheight for one
	// line"): roughly once every 200 frames, one random line's rendered
	// height is halved for that frame only.
	HashnoiseOn     bool
	HashnoiseEnable bool
}

// DefaultKnobs returns the knob defaults named in spec.md §4.4.
func DefaultKnobs() Knobs {
	return Knobs{
		Tint:            5,
		Color:           0.70,
		Brightness:      0.02,
		Contrast:        1.50,
		Height:          1.0,
		Width:           1.0,
		Squish:          0.0,
		Powerup:         1000,
		HashnoiseEnable: true,
	}
}

// LevelEntry is one (index, value) pair of the level table, per spec.md
// §4.3.4.
type LevelEntry struct {
	Index int
	Value float64
}

// TVEngine is the demodulator and renderer described by spec.md §4.3. It
// owns all per-channel-independent receiver state; InputSignals and
// Receptions are read-only inputs to Draw.
type TVEngine struct {
	Geo signal.Geometry
	Log log.Logger
	Knobs Knobs

	// RxSignal is the assembled receiver signal: SignalLen samples plus a
	// 2*H wrap-duplicate of the first two lines (spec.md §3 invariant).
	RxSignal []float32

	CRTLoad     []float64 // len V
	LineHSync   []int     // len V
	CurHSync    int
	CurVSync    int
	CBPhase     [4]float64
	LineCBPhase [][4]float64 // len V

	AGCLevel float64

	channelChangeCycles int // countdown consumed by the next Draw

	IntensityValues [1024]uint16
	LevelTable      [signal.MaxLineHeight + 1][signal.MaxLineHeight + 1]LevelEntry

	UseWidth, UseHeight int // internal render-target size (even)
	crtImage            *raster.Raster
	firstFrame          bool

	rng             *dsp.LCG // engine-owned PRNG, seeded from the run seed
	frameRandom0    uint32
	frameRandom1    uint32
	frameCount      uint64
	powerOnFrameSet bool

	flutterPhase    float64 // FlutterHorizDesync drift phase
	shrinkPulseLine int     // line to shorten this frame, or -1

	workers int
}

// New returns a TVEngine for the given geometry, seeded from seed (the
// deterministic run seed named in spec.md §6's --seed flag).
func New(geo signal.Geometry, l log.Logger, seed uint32, workers int) *TVEngine {
	if l == nil {
		l = log.Discard()
	}
	if workers < 1 {
		workers = 1
	}
	e := &TVEngine{
		Geo:         geo,
		Log:         l,
		Knobs:       DefaultKnobs(),
		RxSignal:    make([]float32, geo.SignalLen+2*geo.H),
		CRTLoad:     make([]float64, geo.V),
		LineHSync:   make([]int, geo.V),
		LineCBPhase: make([][4]float64, geo.V),
		rng:             dsp.NewLCG(seed),
		firstFrame:      true,
		workers:         workers,
		shrinkPulseLine: -1,
	}
	e.CurHSync = 0
	e.CurVSync = 0
	e.CRTLoad[(geo.TOP-1+geo.V)%geo.V] = 0.5
	e.buildIntensityLUT()
	return e
}

// buildIntensityLUT fills IntensityValues with the monotone non-decreasing
// gamma LUT i -> 65535*(i/256)^0.8 >> 8, per spec.md §3.
func (e *TVEngine) buildIntensityLUT() {
	for i := range e.IntensityValues {
		v := 65535 * math.Pow(float64(i)/256, 0.8)
		iv := int(v) >> 8
		if iv < 0 {
			iv = 0
		}
		if iv > 0xFFFF {
			iv = 0xFFFF
		}
		e.IntensityValues[i] = uint16(iv)
	}
}

// Configure sets the output frame size, deriving the even-sized internal
// render target (usewidth/useheight). Draw calls it with the output
// raster's size if it has not been called yet. Calling it again
// re-derives the internal target but preserves receiver state (sync,
// AGC, CRT load).
func (e *TVEngine) Configure(outW, outH int) {
	e.UseWidth = evenFloor(outW)
	e.UseHeight = evenFloor(outH)
	if e.UseWidth < 2 {
		e.UseWidth = 2
	}
	if e.UseHeight < 2 {
		e.UseHeight = 2
	}
	e.crtImage = raster.New(e.UseWidth, e.UseHeight)
}

func evenFloor(v int) int {
	if v%2 != 0 {
		v--
	}
	return v
}
