package engine

import (
	"testing"

	"github.com/duskframe/ntsctv/encoder"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

func newTestChannel(t *testing.T, geo signal.Geometry, luma float64) *signal.InputSignal {
	t.Helper()
	sig := signal.New(geo)
	enc := encoder.New(geo, nil)
	enc.SetupSync(sig, true, false)
	enc.DrawSolidRelLCP(sig, 0, 1, 0, 1, luma, 0, 0)
	sig.WrapRow()
	return sig
}

func newTestReception(sig *signal.InputSignal, ofs int) signal.Reception {
	return signal.Reception{
		Sig:   sig,
		Ofs:   ofs,
		Level: 1.0,
	}
}

// TestDrawIsDeterministicAcrossWorkerCounts implements invariant #4: the
// same seed, inputs and duration produce byte-identical output regardless
// of worker count.
func TestDrawIsDeterministicAcrossWorkerCounts(t *testing.T) {
	geo := signal.NewGeometry(1)
	sig := newTestChannel(t, geo, 75)

	render := func(workers int) []byte {
		e := New(geo, nil, 12345, workers)
		e.Knobs.Powerup = 1000
		e.Configure(64, 48)
		out := raster.New(64, 48)
		rec := newTestReception(sig, 0)
		for f := 0; f < 3; f++ {
			e.Draw(0.06, []signal.Reception{rec}, out)
		}
		cp := make([]byte, len(out.Pix))
		copy(cp, out.Pix)
		return cp
	}

	single := render(1)
	multi := render(4)

	if len(single) != len(multi) {
		t.Fatalf("output length differs: %d vs %d", len(single), len(multi))
	}
	for i := range single {
		if single[i] != multi[i] {
			t.Fatalf("output differs at byte %d: workers=1 got %d, workers=4 got %d", i, single[i], multi[i])
		}
	}
}

// TestNoSignalIsBlack implements invariant #5: zero Receptions and zero
// noise level yield rx_signal == 0 and a uniformly black output Raster.
func TestNoSignalIsBlack(t *testing.T) {
	geo := signal.NewGeometry(1)
	e := New(geo, nil, 1, 2)
	e.Knobs.Powerup = 1000
	e.Configure(32, 32)
	out := raster.New(32, 32)

	e.Draw(0, nil, out)

	for _, v := range e.RxSignal {
		if v != 0 {
			t.Fatalf("expected rx_signal to be all zero with no receptions and zero noise, found %v", v)
		}
	}
	for i := 0; i+3 < len(out.Pix); i += 4 {
		r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
		if r != 0 || g != 0 || b != 0 {
			t.Fatalf("expected black output pixel at %d, got (%d,%d,%d)", i, r, g, b)
		}
	}
}

// TestLevelTableSymmetry implements invariant #7: once avgheight is past
// all three thresholds (and so every index assignment has been made),
// leveltable[h][i].index == leveltable[h][h-1-i].index for every h, i.
func TestLevelTableSymmetry(t *testing.T) {
	geo := signal.NewGeometry(1)
	e := New(geo, nil, 1, 1)
	e.computeLevelTable(10)

	for h := 1; h <= signal.MaxLineHeight; h++ {
		for i := 0; i < h; i++ {
			got := e.LevelTable[h][i].Index
			want := e.LevelTable[h][h-1-i].Index
			if got != want {
				t.Fatalf("leveltable[%d][%d].Index = %d, leveltable[%d][%d].Index = %d: not symmetric", h, i, got, h, h-1-i, want)
			}
		}
	}
}

// TestPowerRampDarkensEarlyFrames implements invariant #6's shape: mean
// output luminance at powerup=0 is much lower than at a fully warmed up
// powerup.
func TestPowerRampDarkensEarlyFrames(t *testing.T) {
	geo := signal.NewGeometry(1)
	sig := newTestChannel(t, geo, 75)
	rec := newTestReception(sig, 0)

	meanLuma := func(powerup float64) float64 {
		e := New(geo, nil, 7, 1)
		e.Knobs.Powerup = powerup
		e.Configure(48, 48)
		out := raster.New(48, 48)
		e.Draw(0.06, []signal.Reception{rec}, out)

		var sum float64
		var n int
		for i := 0; i+3 < len(out.Pix); i += 4 {
			sum += float64(out.Pix[i]) + float64(out.Pix[i+1]) + float64(out.Pix[i+2])
			n++
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}

	cold := meanLuma(0)
	warm := meanLuma(7)

	if warm <= cold {
		t.Fatalf("expected warmed-up mean luminance (%v) to exceed cold start-up (%v)", warm, cold)
	}
	if cold > 0.1*warm {
		t.Fatalf("expected cold-start luminance to be a small fraction of warmed-up luminance: cold=%v warm=%v", cold, warm)
	}
}

// TestSyncRecoveryConverges implements invariant #8's shape: feeding a
// signal rotated by a fixed offset causes cur_hsync to settle (stop
// changing) within a handful of frames, rather than drifting forever.
func TestSyncRecoveryConverges(t *testing.T) {
	geo := signal.NewGeometry(1)
	sig := newTestChannel(t, geo, 75)
	rec := newTestReception(sig, geo.H/3)

	e := New(geo, nil, 99, 2)
	e.Knobs.Powerup = 1000
	e.Configure(32, 32)
	out := raster.New(32, 32)

	var last int
	var deltas []int
	for f := 0; f < 6; f++ {
		e.Draw(0.06, []signal.Reception{rec}, out)
		if f > 0 {
			d := e.CurHSync - last
			if d < 0 {
				d = -d
			}
			deltas = append(deltas, d)
		}
		last = e.CurHSync
	}

	if deltas[len(deltas)-1] > deltas[0] {
		t.Fatalf("expected hsync adjustment to shrink over frames, got deltas %v", deltas)
	}
}
