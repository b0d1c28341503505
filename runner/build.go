/*
NAME
  build.go

DESCRIPTION
  build.go provides New, which wires a validated config.Config into a
  ready-to-run Runner: opening every --in source, building one
  InputSignal and SourceEncoder per source (with sync/colourburst laid
  down once via SetupSync), constructing the Controller named by
  --control, opening every --out sink, and sizing the TVEngine.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package runner

import (
	"fmt"
	"time"

	"github.com/duskframe/ntsctv/config"
	"github.com/duskframe/ntsctv/control"
	"github.com/duskframe/ntsctv/device"
	"github.com/duskframe/ntsctv/encoder"
	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/signal"
	"github.com/duskframe/ntsctv/sink"
)

// New builds a Runner from cfg, per spec.md §6. It opens every source
// and sink eagerly (spec.md §7's SourceOpenFailed / SinkOpenFailed:
// "fail fast with a diagnostic").
func New(cfg config.Config, l log.Logger) (*Runner, error) {
	if l == nil {
		l = log.Discard()
	}
	geo := signal.NewGeometry(1)
	enc := encoder.New(geo, l)

	var sources []device.FrameSource
	var sigs []*signal.InputSignal
	for _, in := range cfg.In {
		src, err := device.Open(in)
		if err != nil {
			return nil, fmt.Errorf("runner: opening source %q: %w", in, err)
		}
		sig := signal.New(geo)
		enc.SetupSync(sig, true, false)
		sigs = append(sigs, sig)
		sources = append(sources, src)
	}

	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		w, h = 640, 480
	}

	var sinks []sink.FrameSink
	for _, out := range cfg.Out {
		s, err := sink.Open(out, w, h)
		if err != nil {
			for _, opened := range sinks {
				opened.Close()
			}
			return nil, fmt.Errorf("runner: opening sink %q: %w", out, err)
		}
		sinks = append(sinks, s)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl, err := buildController(cfg, sigs, geo, l)
	if err != nil {
		return nil, err
	}

	eng := engine.New(geo, l, uint32(seed), 0)
	eng.Configure(w, h)

	return &Runner{
		Sources:    sources,
		Signals:    sigs,
		Encoder:    enc,
		Controller: ctrl,
		Engine:     eng,
		Sinks:      sinks,
		Log:        l,
		OutWidth:   w,
		OutHeight:  h,
	}, nil
}

func buildController(cfg config.Config, sigs []*signal.InputSignal, geo signal.Geometry, l log.Logger) (control.Controller, error) {
	sc, err := config.ParseControlScenario(cfg.Control)
	if err != nil {
		return nil, err
	}
	if sc.ScenarioPath != "" {
		return control.NewScriptedController(sc.ScenarioPath, sigs, l)
	}
	return control.NewRandomController(control.RandomControllerConfig{
		Sources:     sigs,
		Geo:         geo,
		DurationS:   float64(sc.Duration),
		FPS:         sc.FPS,
		PowerUpDown: sc.PowerUpDown,
		FixSettings: sc.FixSettings,
	}), nil
}
