/*
NAME
  crtload.go

DESCRIPTION
  crtload.go implements spec.md §4.3.1 step 6: serial CRT-load
  smoothing, a single-pass exponential filter over the per-line total
  signal energy that feeds the horizontal bloom term used by
  render_line.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import "github.com/duskframe/ntsctv/signal"

// updateCRTLoad recomputes crtload[l] for every visible line, in order
// (each line depends on the previous), per spec.md §4.3.1 step 6.
func (e *TVEngine) updateCRTLoad(squeezebottom float64) {
	geo := e.Geo
	prev := e.CRTLoad[(geo.TOP-1+geo.V)%geo.V]

	for l := geo.TOP; l < geo.Bot; l++ {
		sigOfs := e.LineHSync[l] + geo.PicStart
		var total float64
		for k := 0; k < geo.PicLen; k++ {
			idx := sigOfs + k
			if idx < 0 || idx >= len(e.RxSignal) {
				idx = ((idx % len(e.RxSignal)) + len(e.RxSignal)) % len(e.RxSignal)
			}
			total += float64(e.RxSignal[idx])
		}
		total *= e.AGCLevel

		squeeze := squeezeTerm(l, geo, squeezebottom)
		v := 0.95*prev + 0.05*(0.5+(total-30000)/100000+squeeze)
		e.CRTLoad[l] = v
		prev = v
	}
}

// squeezeTerm grows toward the bottom of the frame proportionally to
// squeezebottom, coupling bottom-row shrink to the CRT load.
func squeezeTerm(l int, geo signal.Geometry, squeezebottom float64) float64 {
	if geo.VisLines <= 1 {
		return 0
	}
	frac := float64(l-geo.TOP) / float64(geo.VisLines-1)
	if frac < 0 {
		frac = 0
	}
	return squeezebottom * frac * frac
}
