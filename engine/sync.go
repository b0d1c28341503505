/*
NAME
  sync.go

DESCRIPTION
  sync.go implements spec.md §4.3.2: vertical and horizontal sync
  recovery and colourburst phase tracking, run once per frame against
  the freshly assembled rx_signal.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import "math"

// sync runs vertical sync, per-line horizontal sync and colourburst phase
// recovery against the assembled rx_signal, per spec.md §4.3.2.
func (e *TVEngine) sync() {
	e.syncVertical()
	for l := 0; l < e.Geo.V; l++ {
		e.syncHorizontalLine(l)
		e.syncColourburstLine(l)
	}
}

// syncVertical sweeps a window around the current vertical sync estimate,
// updating cur_vsync to the offset where the 16-sample average first
// crosses the vsync threshold.
func (e *TVEngine) syncVertical() {
	geo := e.Geo
	s := geo.S
	lo := -32 * s
	hi := 32 * s
	stride := geo.H / (16 * s)
	if stride < 1 {
		stride = 1
	}

	best := 0
	for i := lo; i < hi; i++ {
		var sum float64
		for k, j := 0, 0; k < 16; k, j = k+1, j+stride {
			line := ((e.CurVSync + i) % geo.V + geo.V) % geo.V
			idx := line*geo.H + j
			sum += float64(e.RxSignal[idx])
		}
		filt := (sum / 16) * e.AGCLevel
		if float64(geo.V+i)/float64(geo.V) >= 1.05+0.0002*filt {
			best = i
			break
		}
	}
	e.CurVSync = ((e.CurVSync + best) % geo.V + geo.V) % geo.V
}

// syncHorizontalLine updates cur_hsync and line_hsync[l] for line l, unless
// l falls inside the vertical sync interval [5S, V-3S).
func (e *TVEngine) syncHorizontalLine(l int) {
	geo := e.Geo
	s := geo.S
	if l >= 5*s && l < geo.V-3*s {
		return
	}

	lo := -8 * s
	hi := 8 * s
	base := l*geo.H + e.CurHSync

	best := 0
	for i := lo; i < hi; i++ {
		var sum float64
		for k := 0; k < 4; k++ {
			idx := base + i - k
			idx = ((idx % len(e.RxSignal)) + len(e.RxSignal)) % len(e.RxSignal)
			sum += float64(e.RxSignal[idx])
		}
		filt := sum * e.AGCLevel
		if float64(geo.H+i)/float64(geo.H) >= 1.005+0.0001*filt {
			best = i
			break
		}
	}
	e.CurHSync = ((e.CurHSync + best) % geo.H + geo.H) % geo.H
	e.LineHSync[l] = (e.CurHSync + geo.PicStart) % geo.H
}

// syncColourburstLine updates cb_phase and line_cb_phase[l] once past the
// vertical sync region, per spec.md §4.3.2.
func (e *TVEngine) syncColourburstLine(l int) {
	geo := e.Geo
	s := geo.S
	if l <= 15*s {
		return
	}

	start := geo.CBStart + 8*s
	end := geo.CBStart + 28*s
	base := l*geo.H + e.LineHSync[l]
	n := len(e.RxSignal)

	for i := start; i < end; i++ {
		idx := ((base+i)%n + n) % n
		v := float64(e.RxSignal[idx]) * e.AGCLevel
		k := i & 3
		e.CBPhase[k] = e.CBPhase[k]*(1-1.0/128) + v*(1.0/128)
	}

	var sumSq float64
	for _, v := range e.CBPhase {
		sumSq += v * v
	}
	scale := 32 / math.Sqrt(0.1+sumSq)
	for k := 0; k < 4; k++ {
		e.LineCBPhase[l][k] = e.CBPhase[k] * scale
	}
}
