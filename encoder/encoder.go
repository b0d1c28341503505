/*
NAME
  encoder.go

DESCRIPTION
  encoder.go provides SourceEncoder, which converts a Raster (and optional
  mask) into an InputSignal, and can draw SMPTE colour bars and solid
  rectangles directly into an InputSignal, per specification §4.1-§4.2.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package encoder implements the SourceEncoder: the sync/colourburst
// scaffold and the image-to-NTSC rasteriser described in spec.md §4.1-4.2.
package encoder

import (
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/signal"
)

// SourceEncoder converts Rasters into InputSignals for one channel slot.
// It holds no per-channel state of its own; all mutable state lives in
// the InputSignal it is given.
type SourceEncoder struct {
	Geo signal.Geometry
	Log log.Logger
}

// New returns a SourceEncoder for the given geometry.
func New(geo signal.Geometry, l log.Logger) *SourceEncoder {
	if l == nil {
		l = log.Discard()
	}
	return &SourceEncoder{Geo: geo, Log: l}
}
