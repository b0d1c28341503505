/*
NAME
  assemble.go

DESCRIPTION
  assemble.go implements spec.md §4.3.1 steps 1-2: AGC preparation and
  assembly of the receiver signal (noise floor, channel-change bursts and
  steady-state reception mixing with ghosting and HF loss) into
  TVEngine.RxSignal, partitioned into 4-sample-aligned 2048-sample blocks
  that run on a worker pool (spec.md §5).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import (
	"math"

	"github.com/duskframe/ntsctv/dsp"
	"github.com/duskframe/ntsctv/signal"
)

const assembleBlockSize = 2048

// prepareAGC computes rx_signal_level from the noise level and the given
// Receptions, and wrap-duplicates each Reception's InputSignal row 0 into
// row V, per spec.md §4.3.1 step 1.
func (e *TVEngine) prepareAGC(noiseLevel float32, recs []signal.Reception) float64 {
	sum := float64(noiseLevel) * float64(noiseLevel)
	for _, r := range recs {
		var ghostSum float64
		for _, g := range r.GhostFIR {
			ghostSum += float64(g)
		}
		sum += float64(r.Level) * float64(r.Level) * (1 + 4*ghostSum)
		if r.Sig != nil {
			r.Sig.WrapRow()
		}
	}
	return math.Sqrt(sum)
}

// assembleSignal fills RxSignal[0:SignalLen) and its trailing 2*H wrap
// duplicate, per spec.md §4.3.1 step 2.
func (e *TVEngine) assembleSignal(noiseLevel float32, recs []signal.Reception) {
	n := e.Geo.SignalLen
	nBlocks := (n + assembleBlockSize - 1) / assembleBlockSize

	ec := e.channelChangeCycles

	runParallel(e.workers, nBlocks, func(b int) {
		start := b * assembleBlockSize
		end := start + assembleBlockSize
		if end > n {
			end = n
		}
		e.assembleBlock(start, end, noiseLevel, recs, ec)
	})

	e.channelChangeCycles = 0

	for k := 0; k < 2*e.Geo.H; k++ {
		e.RxSignal[n+k] = e.RxSignal[k]
	}
}

func (e *TVEngine) assembleBlock(start, end int, noiseLevel float32, recs []signal.Reception, ec int) {
	noiseAmp := math.Sqrt(150 * float64(noiseLevel))

	noiseLCG1 := dsp.JumpedLCG(e.frameRandom0, uint64(start))
	noiseLCG2 := dsp.JumpedLCG(e.frameRandom0, uint64(start)+1)
	burstLCG := dsp.JumpedLCG(e.frameRandom1, uint64(start))

	for i := start; i < end; i++ {
		n1 := dsp.ToSigned(noiseLCG1.Next(), noiseAmp)
		n2 := dsp.ToSigned(noiseLCG2.Next(), noiseAmp)
		e.RxSignal[i] = float32(n1 * n2)
	}

	for k := range recs {
		rec := &recs[k]
		recEC := 0
		if k == 0 {
			recEC = ec
		}
		skip := recEC - start
		if skip < 0 {
			skip = 0
		}
		if start+skip > end {
			skip = end - start
		}
		burstEnd := start + skip

		for i := start; i < burstEnd; i++ {
			amp := 1.3 * math.Pow(0.99995, float64(i))
			noise := dsp.ToUniform(burstLCG.Next(), -50, 50)
			s := rec.Sig.AtOffset(rec.Ofs + i)
			e.RxSignal[i] += float32(float64(s)*float64(rec.Level)*(1-amp) + noise*amp)
		}

		steadyStart := burstEnd
		// Align to a 4-sample boundary as spec.md §5 requires.
		steadyStart -= steadyStart % 4
		if steadyStart < start {
			steadyStart = start
		}
		e.mixSteady(rec, steadyStart, end)
	}
}

// mixSteady implements the steady-state per-reception mixing of
// spec.md §4.3.1 step 2, processing 4 samples at a time through a 5-tap
// tapped delay line of 4-sample sums (the ghost FIR).
func (e *TVEngine) mixSteady(rec *signal.Reception, start, end int) {
	if rec.Sig == nil {
		return
	}
	var dp [5]float64
	for i := start; i+3 < end; i += 4 {
		var s [4]float64
		for j := 0; j < 4; j++ {
			s[j] = float64(rec.Sig.AtOffset(rec.Ofs + i + j))
		}
		dp[0] = s[0] + s[1] + s[2] + s[3]

		var ghost float64
		for m := 0; m < 4; m++ {
			ghost += dp[m+1] * float64(rec.GhostFIR[m])
		}
		dp[4], dp[3], dp[2], dp[1] = dp[3], dp[2], dp[1], dp[0]

		level := float64(rec.Level)
		hfloss := float64(rec.HFLoss)
		e.RxSignal[i+0] += float32((s[0] + ghost + s[2]*hfloss) * level)
		e.RxSignal[i+1] += float32((s[1] + ghost + s[3]*hfloss) * level)
		e.RxSignal[i+2] += float32((s[2] + ghost + s[0]*hfloss) * level)
		e.RxSignal[i+3] += float32((s[3] + ghost + s[1]*hfloss) * level)
	}
}
