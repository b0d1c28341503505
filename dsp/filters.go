/*
NAME
  filters.go

DESCRIPTION
  filters.go implements the three fixed-point Butterworth low-pass filters
  used to demodulate Y, I and Q, per specification §4.2 step 5 (encoding)
  and §4.3.3 step 3 (demodulation, which the specification says reuses
  "the same fixed-point filters as §4.2"). The magic coefficients are
  quoted verbatim from the specification and from mkfilter-style fixed
  point ports; they are part of the observable behaviour and must not be
  adjusted (spec.md §9).

  Reading note: the specification gives each filter as an "input gain"
  and a recurrence over x (FIR) and y (IIR, scaled by 2^N). We resolve
  that as: the raw sample is first divided (integer division) by the
  input gain to produce the x fed to the recurrence, and the recurrence's
  own right-shift applies only to the IIR feedback term. This is the
  standard shape mkfilter-generated fixed-point ports take, and is the
  most direct reading of the specification text (no original_source/ was
  retrievable to check against).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package dsp provides the fixed-point filters and deterministic noise
// generator shared by the encoder and the engine.
package dsp

// YFilter is the 4-pole Butterworth low-pass at 3.5MHz (plus an extra
// zero at 3.5MHz) used to band-limit luminance.
type YFilter struct {
	xbuf [7]int64 // x[n-6] .. x[n]
	ybuf [4]int64 // y[n-1] .. y[n-4]
}

const yGain = 1897

var yFIR = [7]int64{1, 4, 7, 8, 7, 4, 1}       // applied to x[n-6]..x[n]
var yIIR = [4]int64{36586, -38312, 8115, -151} // applied to y[n-1]..y[n-4]

// Reset clears the filter's history, as required between scan lines.
func (f *YFilter) Reset() { *f = YFilter{} }

// Step pushes one raw sample through the filter and returns the new
// output sample.
func (f *YFilter) Step(raw int64) int64 {
	x := raw / yGain
	copy(f.xbuf[:6], f.xbuf[1:])
	f.xbuf[6] = x

	var fir int64
	for i, w := range yFIR {
		fir += w * f.xbuf[i]
	}
	var iir int64
	for i, w := range yIIR {
		iir += w * f.ybuf[i]
	}
	y := fir + (iir >> 16)

	copy(f.ybuf[1:], f.ybuf[:3])
	f.ybuf[0] = y
	return y
}

// IFilter is the 3-pole Butterworth low-pass at 1.5MHz used to band-limit
// the in-phase chroma component.
type IFilter struct {
	xbuf [4]int64 // x[n-3] .. x[n]
	ybuf [3]int64 // y[n-1] .. y[n-3]
}

const iGain = 1413

var iqFIR = [4]int64{1, 3, 3, 1}
var iIIR = [3]int64{109682, -72008, 16559}

func (f *IFilter) Reset() { *f = IFilter{} }

func (f *IFilter) Step(raw int64) int64 {
	x := raw / iGain
	copy(f.xbuf[:3], f.xbuf[1:])
	f.xbuf[3] = x

	var fir int64
	for i, w := range iqFIR {
		fir += w * f.xbuf[i]
	}
	var iir int64
	for i, w := range iIIR {
		iir += w * f.ybuf[i]
	}
	y := fir + (iir >> 16)

	copy(f.ybuf[1:], f.ybuf[:2])
	f.ybuf[0] = y
	return y
}

// QFilter is the 3-pole Butterworth low-pass at 0.5MHz used to band-limit
// the quadrature chroma component.
type QFilter struct {
	xbuf [4]int64
	ybuf [3]int64
}

const qGain = 75

var qIIR = [3]int64{10453, -9007, 2612}

func (f *QFilter) Reset() { *f = QFilter{} }

func (f *QFilter) Step(raw int64) int64 {
	x := raw / qGain
	copy(f.xbuf[:3], f.xbuf[1:])
	f.xbuf[3] = x

	var fir int64
	for i, w := range iqFIR {
		fir += w * f.xbuf[i]
	}
	var iir int64
	for i, w := range qIIR {
		iir += w * f.ybuf[i]
	}
	y := fir + (iir >> 12)

	copy(f.ybuf[1:], f.ybuf[:2])
	f.ybuf[0] = y
	return y
}

// YIQFilters bundles one instance of each filter, reset together per scan
// line as spec.md §4.2 step 5 requires ("running their state across a
// scan line; reset per row").
type YIQFilters struct {
	Y YFilter
	I IFilter
	Q QFilter
}

// Reset clears all three filters' history.
func (f *YIQFilters) Reset() {
	f.Y.Reset()
	f.I.Reset()
	f.Q.Reset()
}

// Step pushes one raw (rawy, rawi, rawq) triple through the three
// filters and returns the filtered (Y, I, Q) triple.
func (f *YIQFilters) Step(rawY, rawI, rawQ int64) (y, i, q int64) {
	return f.Y.Step(rawY), f.I.Step(rawI), f.Q.Step(rawQ)
}
