/*
NAME
  controller.go

DESCRIPTION
  controller.go defines Controller, the per-frame driver that owns
  channel selection and knob drift, and Action, the verdict a Controller
  returns from Next each frame, per spec.md §4.5.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package control implements the Controller abstraction: RandomController
// (spec.md §4.5.1-4.5.3) and ScriptedController, the two drivers that
// pick channels and drift TVEngine knobs once per frame.
package control

import (
	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/signal"
)

// Action is the verdict a Controller returns from Next.
type Action int

const (
	// None means render the current channel unchanged.
	None Action = iota
	// Switch means a new channel was picked; Channel names which one.
	Switch
	// Quit means the run's configured duration has elapsed.
	Quit
)

// Controller picks channels and drifts knobs once per frame, writing its
// decisions into the engine's Knobs before Draw is called.
type Controller interface {
	// Next advances the controller by one frame and returns the action
	// the Runner should take, plus the channel index relevant to it.
	Next() (Action, int)

	// Receptions returns the Receptions and noise level for the channel
	// last selected (or the initial channel, before any Switch).
	Receptions() ([]signal.Reception, float32)

	// Apply writes the controller's current knob values into e.Knobs.
	Apply(e *engine.TVEngine)
}
