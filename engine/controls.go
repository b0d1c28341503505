/*
NAME
  controls.go

DESCRIPTION
  controls.go implements the power-up/warm-up ramp function and the
  per-frame knob integration (puheight, tint_i/tint_q) described by
  specification §4.3.1 step 4.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import "math"

// ramp implements ramp(tc, start, over) = min(1, (1-e^(-pt/tc))*over)^2,
// zero when pt <= 0, where pt = powerup - start, per spec.md §4.3.1.
func ramp(powerup, tc, start, over float64) float64 {
	pt := powerup - start
	if pt <= 0 {
		return 0
	}
	v := math.Min(1, (1-math.Exp(-pt/tc))*over)
	return v * v
}

// frameControls bundles the per-frame derived quantities computed once
// in step 4 and reused through the remaining Draw pipeline.
type frameControls struct {
	puheight     float64
	tintI, tintQ float64
}

func (e *TVEngine) computeFrameControls() frameControls {
	pu := e.Knobs.Powerup
	puheight := ramp(pu, 2, 1, 1.3) * e.Knobs.Height * (1.125 - 0.125*ramp(pu, 2, 2, 1.1))

	theta := (103 + e.Knobs.Tint) * math.Pi / 180
	return frameControls{
		puheight: puheight,
		tintI:    -math.Cos(theta),
		tintQ:    math.Sin(theta),
	}
}
