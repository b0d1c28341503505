/*
NAME
  runner.go

DESCRIPTION
  runner.go implements Runner, the frame loop composing FrameSources, a
  Controller, the TVEngine and FrameSinks, per spec.md §5's "single-
  threaded driver loop" and §7's error-handling policy
  (RuntimeDecodeFailure substitutes a blue-screen placeholder and
  continues).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package runner drives the frame loop: decode, control, render,
// encode, repeat, until the Controller signals Quit or the caller
// cancels.
package runner

import (
	"context"
	"errors"
	"io"

	"github.com/duskframe/ntsctv/control"
	"github.com/duskframe/ntsctv/device"
	"github.com/duskframe/ntsctv/encoder"
	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
	"github.com/duskframe/ntsctv/sink"
)

// Runner composes one TVEngine run: sources feed InputSignals (each
// re-rasterised every frame by its SourceEncoder), a Controller picks
// channels and drifts knobs, the TVEngine renders, and every sink
// receives the result.
type Runner struct {
	Sources    []device.FrameSource
	Signals    []*signal.InputSignal
	Encoder    *encoder.SourceEncoder
	Controller control.Controller
	Engine     *engine.TVEngine
	Sinks      []sink.FrameSink
	Log        log.Logger

	OutWidth, OutHeight int
}

// Run drives the frame loop until the Controller returns Quit or ctx is
// cancelled, per spec.md §5's cancellation policy: the current frame is
// finished, sinks are flushed, and the engine is released.
func (r *Runner) Run(ctx context.Context) error {
	out := raster.New(r.OutWidth, r.OutHeight)

	defer func() {
		for _, s := range r.Sinks {
			s.Close()
		}
		for _, s := range r.Sources {
			s.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		action, _ := r.Controller.Next()
		r.Controller.Apply(r.Engine)

		if action == control.Switch {
			r.Engine.Knobs.ChannelChangeCycles = 200000
		}

		r.refreshSignals()

		recs, noiseLevel := r.Controller.Receptions()
		r.Engine.Draw(noiseLevel, recs, out)

		for _, s := range r.Sinks {
			if err := s.Write(out); err != nil {
				return err
			}
		}

		if action == control.Quit {
			return nil
		}
	}
}

// refreshSignals pulls the next frame from each source and re-encodes it
// into the matching InputSignal, substituting a blue-screen placeholder
// on RuntimeDecodeFailure (spec.md §7). It logs on every frame it
// substitutes, not once per source.
func (r *Runner) refreshSignals() {
	for i, src := range r.Sources {
		frame, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Log.Warning("source exhausted, substituting blue-screen placeholder", "source", i)
			} else {
				r.Log.Error("source decode failed, substituting blue-screen placeholder", "source", i, "error", err)
			}
			frame = raster.BlueScreen(r.OutWidth, r.OutHeight)
		}
		sig := r.Signals[i]
		r.Encoder.LoadXImage(sig, frame, nil, 0, 0, r.OutWidth, r.OutHeight, r.OutWidth, r.OutHeight)
		sig.WrapRow()
	}
}
