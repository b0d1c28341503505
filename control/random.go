/*
NAME
  random.go

DESCRIPTION
  random.go implements RandomController: channel table construction
  (spec.md §4.5.1), knob initialisation and drift (§4.5.2), and the
  per-frame Next operation (§4.5.3).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package control

import (
	"math"
	"math/rand"

	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/signal"
)

const (
	powerupDurationS   = 6.0
	powerdownDurationS = 1.0
)

// channel is one tuner slot: up to signal.MaxMultichan Receptions sharing
// a noise level, per spec.md §4.5.1.
type channel struct {
	receptions []signal.Reception
	noiseLevel float32
}

// RandomControllerConfig bundles RandomController's constructor
// parameters, per spec.md §4.5.
type RandomControllerConfig struct {
	Sources      []*signal.InputSignal
	Geo          signal.Geometry
	DurationS    float64
	FPS          int
	PowerUpDown  bool
	FixSettings  bool
	Rand         *rand.Rand // nil means a fixed seed of 1
}

// RandomController is the built-in Controller described by spec.md §4.5.
type RandomController struct {
	cfg      RandomControllerConfig
	channels []channel
	rng      *rand.Rand

	knobs knobState

	frameCounter      int
	channelIdx        int
	channelLastFrame  int
	lastBrightnessSet bool
	lastBrightness    float64
}

// knobState mirrors the subset of engine.Knobs the controller drives.
type knobState struct {
	tint, color, brightness, contrast float64
	height, width, squish             float64
	horizDesync, squeezeBottom        float64
	powerup                           float64
	hashnoiseEnable                   bool
}

// NewRandomController builds the channel table (spec.md §4.5.1) and
// initial knob state (§4.5.2) for cfg.
func NewRandomController(cfg RandomControllerConfig) *RandomController {
	if cfg.FPS == 0 {
		cfg.FPS = 30
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	c := &RandomController{cfg: cfg, rng: rng}
	c.buildChannels()
	c.initKnobs()
	return c
}

func (c *RandomController) buildChannels() {
	n := len(c.cfg.Sources)
	if n == 0 {
		return
	}
	nChannels := 2 * n
	if nChannels < 6 {
		nChannels = 6
	}

	prev := -1
	for ch := 0; ch < nChannels; ch++ {
		var ch1 channel
		ch1.noiseLevel = signal.DefaultNoiseLevel

		for k := 0; k < signal.MaxMultichan; k++ {
			station := c.pickStation(n, prev)
			prev = station

			rec := signal.Reception{Sig: c.cfg.Sources[station]}
			if c.cfg.FixSettings {
				rec.Level = 0.3
			} else {
				u := c.rng.Float64()
				rec.Level = float32(u*u*u*2 + 0.05)
				rec.Ofs = c.rng.Intn(c.cfg.Geo.SignalLen)
				if c.rng.Float64() < 2.0/3 {
					rec.Multipath = float32(c.rng.Float64())
				}
				if k > 0 {
					rec.FreqErr = float32((c.rng.Float64()*2 - 1) * 3)
				}
			}
			deriveGhosting(&rec)
			ch1.receptions = append(ch1.receptions, rec)

			if rec.Level > 0.3 || c.rng.Float64() < 0.75 {
				break
			}
		}
		c.channels = append(c.channels, ch1)
	}
}

// ghostTaps is a fixed decaying echo profile scaled by a reception's
// multipath coefficient to produce its ghost FIR, since spec.md defines
// multipath/ghostfir/hfloss as fields of Reception (§3) and their use in
// engine.mixSteady but never gives the multipath -> ghostfir/hfloss
// mapping itself (see DESIGN.md Open Questions).
var ghostTaps = [signal.GhostFIRLen]float32{0.5, 0.25, 0.125, 0.0625}

// deriveGhosting fills rec's GhostFIR/GhostFIR2/HFLoss/HFLoss2 from its
// Multipath coefficient, so that a non-zero multipath (spec.md §4.5.1)
// actually produces the ghosting and HF loss artefacts named in spec.md
// §1/§2 rather than leaving engine.mixSteady's ghost/hfloss terms at
// their zero default.
func deriveGhosting(rec *signal.Reception) {
	if rec.Multipath == 0 {
		return
	}
	for k := range rec.GhostFIR {
		rec.GhostFIR[k] = rec.Multipath * ghostTaps[k]
		rec.GhostFIR2[k] = rec.Multipath * ghostTaps[k] * 0.5
	}
	rec.HFLoss = rec.Multipath * 0.5
	rec.HFLoss2 = rec.Multipath * 0.25
}

// pickStation draws a station index uniformly, rejecting a repeat of prev
// unless a 1-in-10 gate fires, per spec.md §4.5.1.
func (c *RandomController) pickStation(n, prev int) int {
	for {
		s := c.rng.Intn(n)
		if s != prev || c.rng.Float64() < 0.1 {
			return s
		}
	}
}

func (c *RandomController) initKnobs() {
	c.knobs = knobState{
		tint: 5, color: 0.70, brightness: 0.02, contrast: 1.50,
		height: 1.0, width: 1.0, squish: 0.0,
		powerup:         1000,
		hashnoiseEnable: true,
		horizDesync:     c.rng.Float64()*10 - 5,
		squeezeBottom:   c.rng.Float64()*5 - 1,
	}
	c.driftKnobs()
}

// driftKnobs implements the knob drift named in spec.md §4.5.2, run at
// start and on 1-in-5 channel changes when fixsettings is off.
func (c *RandomController) driftKnobs() {
	if c.cfg.FixSettings {
		return
	}
	sign := 1.0
	if c.rng.Float64() < 0.5 {
		sign = -1
	}
	if c.rng.Float64() < 0.25 {
		u := c.rng.Float64()*2 - 1
		c.knobs.tint += math.Pow(u, 7) * 180 * sign
	}
	c.knobs.color += c.rng.Float64() * 0.3 * sign
}

// Next implements spec.md §4.5.3.
func (c *RandomController) Next() (Action, int) {
	curtime := float64(c.frameCounter) / float64(c.cfg.FPS)

	switch {
	case c.cfg.PowerUpDown && float64(c.frameCounter) < powerupDurationS*float64(c.cfg.FPS):
		c.knobs.powerup = curtime

	case c.cfg.PowerUpDown && float64(c.frameCounter) >= (c.cfg.DurationS-powerdownDurationS)*float64(c.cfg.FPS):
		if !c.lastBrightnessSet {
			c.lastBrightness = c.knobs.brightness
			c.lastBrightnessSet = true
		}
		rate := (c.cfg.DurationS - curtime) / powerdownDurationS
		c.knobs.brightness = -1.5*(1-rate) + c.lastBrightness*rate

	case c.frameCounter >= c.channelLastFrame:
		c.channelLastFrame = c.frameCounter + c.cfg.FPS*(1+int(c.rng.Float64()*6))
		if len(c.channels) > 0 {
			c.channelIdx = c.rng.Intn(len(c.channels))
		}
		if c.rng.Intn(5) == 0 {
			c.driftKnobs()
		}
		c.frameCounter++
		return Switch, c.channelIdx
	}

	if float64(c.frameCounter) >= c.cfg.DurationS*float64(c.cfg.FPS) {
		c.frameCounter++
		return Quit, c.channelIdx
	}

	c.frameCounter++
	return None, c.channelIdx
}

// Receptions returns the current channel's Receptions and noise level.
func (c *RandomController) Receptions() ([]signal.Reception, float32) {
	if c.channelIdx < 0 || c.channelIdx >= len(c.channels) {
		return nil, signal.DefaultNoiseLevel
	}
	ch := c.channels[c.channelIdx]
	return ch.receptions, ch.noiseLevel
}

// Apply writes the controller's current knob state into e.Knobs. It does
// not set the channel-change noise burst (§4.4); the caller does that.
func (c *RandomController) Apply(e *engine.TVEngine) {
	e.Knobs.Tint = c.knobs.tint
	e.Knobs.Color = c.knobs.color
	e.Knobs.Brightness = c.knobs.brightness
	e.Knobs.Contrast = c.knobs.contrast
	e.Knobs.Height = c.knobs.height
	e.Knobs.Width = c.knobs.width
	e.Knobs.Squish = c.knobs.squish
	e.Knobs.HorizDesync = c.knobs.horizDesync
	e.Knobs.SqueezeBottom = c.knobs.squeezeBottom
	e.Knobs.Powerup = c.knobs.powerup
	e.Knobs.HashnoiseEnable = c.knobs.hashnoiseEnable
	e.Knobs.HashnoiseOn = c.knobs.hashnoiseEnable
	e.Knobs.FlutterHorizDesync = !c.cfg.FixSettings
}

// MarkChannelChange sets the channel-change noise burst the next Draw
// call should insert, per spec.md §4.4's channel_change_cycles knob.
func (c *RandomController) MarkChannelChange(e *engine.TVEngine) {
	e.Knobs.ChannelChangeCycles = 200000
}
