/*
NAME
  inputsignal.go

DESCRIPTION
  inputsignal.go provides InputSignal, the exclusively-owned V+1 x H matrix
  of signed 8-bit IRE samples that represents one channel's baseband
  composite signal, per specification §3.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package signal

// InputSignal is one channel's baseband composite signal: a (V+1) x H
// matrix of signed 8-bit IRE-scaled samples. Row V is a wrap-around
// duplicate of row 0; it is only kept current after Draw or WrapRow is
// called. InputSignal is created empty and is mutated only by its owning
// SourceEncoder.
type InputSignal struct {
	Geo Geometry
	Sig [][]int8 // Sig[y][x], y in [0, V], x in [0, H)
}

// New allocates an empty InputSignal (all samples zero / Blank) for the
// given geometry.
func New(geo Geometry) *InputSignal {
	s := &InputSignal{Geo: geo, Sig: make([][]int8, geo.V+1)}
	for y := range s.Sig {
		s.Sig[y] = make([]int8, geo.H)
	}
	return s
}

// At returns the sample at (y, x). y wraps modulo V+1, x wraps modulo H,
// so callers never need to perform the modular arithmetic themselves.
func (s *InputSignal) At(y, x int) int8 {
	y = wrapIdx(y, len(s.Sig))
	x = wrapIdx(x, s.Geo.H)
	return s.Sig[y][x]
}

// Set assigns the sample at (y, x), wrapping indices the same way At does.
func (s *InputSignal) Set(y, x int, v int8) {
	y = wrapIdx(y, len(s.Sig))
	x = wrapIdx(x, s.Geo.H)
	s.Sig[y][x] = v
}

// WrapRow copies row 0 into row V, maintaining the invariant that
// sig[V] == sig[0]. It must be called after any update that may have
// touched row 0, before the signal is consumed by a Reception.
func (s *InputSignal) WrapRow() {
	copy(s.Sig[s.Geo.V], s.Sig[0])
}

// Offset returns the flat index (y*H + x) for a (y, x) pair, matching the
// ofs/SIGNAL_LEN addressing used by Reception.
func (s *InputSignal) Offset(y, x int) int {
	return y*s.Geo.H + x
}

// AtOffset reads a sample by flat offset, modulo SIGNAL_LEN, mapping back
// to a row/col pair. Row V (the wrap duplicate) is never reached this way
// since SignalLen = V*H addresses only rows [0, V).
func (s *InputSignal) AtOffset(ofs int) int8 {
	n := s.Geo.SignalLen
	ofs = wrapIdx(ofs, n)
	y := ofs / s.Geo.H
	x := ofs % s.Geo.H
	return s.Sig[y][x]
}

func wrapIdx(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
