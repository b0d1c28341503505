//go:build !withcv
// +build !withcv

/*
NAME
  mat_stub.go

DESCRIPTION
  mat_stub.go stands in for mat_withcv.go when built without the withcv
  tag (no OpenCV/gocv available, e.g. plain `go test ./...`), mirroring
  filter/filters_circleci.go in the teacher. The pure-Go core (signal,
  encoder, engine, control) never needs this; only device/sink code that
  talks to gocv.Mat depends on it indirectly through Raster.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package raster

import "errors"

// errNoCV is returned by the gocv-boundary helpers when built without the
// withcv tag.
var errNoCV = errors.New("raster: built without withcv; gocv.Mat conversions are unavailable")

// matStub mirrors the shape of gocv.Mat just enough to let device/sink
// stub implementations compile without importing gocv.
type matStub struct{}

// FromMat is unavailable in this build; it exists only so that calling
// code does not need its own build tags when not yet converted to the
// gocv.Mat boundary.
func FromMat(_ matStub) (*Raster, error) {
	return nil, errNoCV
}

// ToMat is unavailable in this build.
func (r *Raster) ToMat() (matStub, error) {
	return matStub{}, errNoCV
}
