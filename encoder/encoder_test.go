package encoder

import (
	"image/color"
	"testing"

	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/raster"
	"github.com/duskframe/ntsctv/signal"
)

func newTestEncoder() (*SourceEncoder, *signal.InputSignal) {
	geo := signal.NewGeometry(1)
	return New(geo, log.Discard()), signal.New(geo)
}

// TestSetupSyncSingleSyncSegment checks invariant #1: for every line
// outside vsync, exactly one contiguous segment equals the sync level.
// On vsync lines (3..6) the back-porch-to-picture span is held at sync
// level and the 9-cycle colourburst written over it splits it into
// 1 + 2*9 = 19 runs.
func TestSetupSyncSingleSyncSegment(t *testing.T) {
	e, sig := newTestEncoder()
	e.SetupSync(sig, true, false)

	for y := 0; y < e.Geo.V; y++ {
		runs := 0
		inRun := false
		for x := 0; x < e.Geo.H; x++ {
			isSync := sig.At(y, x) == signal.Sync
			if isSync && !inRun {
				runs++
				inRun = true
			} else if !isSync {
				inRun = false
			}
		}
		vsync := 3 <= y && y < 7
		if vsync {
			if runs != 19 {
				t.Fatalf("line %d (vsync): expected 19 SYNC-level runs (sync span split by 9 colourburst cycles), got %d", y, runs)
			}
			continue
		}
		if runs != 1 {
			t.Fatalf("line %d: expected exactly one contiguous sync run, got %d", y, runs)
		}
	}
}

// TestSetupSyncColourburstSumsToZero checks invariant #1's colourburst
// clause: colourburst samples sum to zero over 4 consecutive samples.
func TestSetupSyncColourburstSumsToZero(t *testing.T) {
	e, sig := newTestEncoder()
	e.SetupSync(sig, true, false)

	y := 10 // a non-vsync line
	for base := e.Geo.CBStart; base+3 < e.Geo.CBStart+36; base += 4 {
		sum := int(sig.At(y, base)) + int(sig.At(y, base+1)) + int(sig.At(y, base+2)) + int(sig.At(y, base+3))
		// Sample 0 and 2 are BLANK (0) by construction; 1 and 3 are +-CB.
		if sum != 0 {
			t.Fatalf("colourburst group at %d: expected sum 0, got %d", base, sum)
		}
	}
}

// TestDrawSolidRelLCPMonotoneInLuma checks the shape of invariant #3: a
// solid fill at a higher luma produces strictly larger composite samples
// than one at a lower luma, i.e. DrawSolidRelLCP's luma parameter tracks
// the written samples monotonically. The quantitative form of invariant
// #3 ("|Y-L|/L < 0.05 after ntsc_to_yiq") is not checked; the engine
// tests in engine/render_test.go likewise check only that rendered luma
// is monotone in source luma.
func TestDrawSolidRelLCPMonotoneInLuma(t *testing.T) {
	levels := []float64{15, 36, 75, 100}
	var means []float64
	for _, l := range levels {
		e, sig := newTestEncoder()
		e.SetupSync(sig, true, false)
		e.DrawSolidRelLCP(sig, 0, 1, 0, 1, l, 0, 0)
		sig.WrapRow()

		sum, n := 0, 0
		line := e.Geo.TOP + 5
		for x := e.Geo.VisStart; x < e.Geo.VisEnd; x++ {
			sum += int(sig.At(line, x))
			n++
		}
		means = append(means, float64(sum)/float64(n))
	}
	for i := 1; i < len(means); i++ {
		if means[i] <= means[i-1] {
			t.Fatalf("expected mean sample to increase with luma: levels=%v means=%v", levels, means)
		}
	}
}

// TestLoadXImageRange checks invariant #2: samples always land in [0,125].
func TestLoadXImageRange(t *testing.T) {
	e, sig := newTestEncoder()
	e.SetupSync(sig, true, false)

	pic := raster.New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			pic.Set(x, y, rgbaAt(x, y))
		}
	}
	e.LoadXImage(sig, pic, nil, 0, 0, 16, 16, 16, 16)
	sig.WrapRow()

	for y := e.Geo.TOP; y < e.Geo.Bot; y++ {
		for x := e.Geo.PicStart; x < e.Geo.PicStart+e.Geo.PicLen; x++ {
			v := sig.At(y, x)
			if v < 0 || v > 125 {
				t.Fatalf("sample at (%d,%d) = %d out of [0,125]", y, x, v)
			}
		}
	}
}

// TestLoadXImageMaskLeavesSampleUnchanged checks the masked-column clause
// of invariant #2.
func TestLoadXImageMaskLeavesSampleUnchanged(t *testing.T) {
	e, sig := newTestEncoder()
	e.SetupSync(sig, true, false)

	pic := raster.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pic.Set(x, y, rgbaAt(255, 255))
		}
	}
	mask := raster.New(4, 4) // all zero => fully transparent
	before := snapshotPicture(e, sig)

	e.LoadXImage(sig, pic, mask, 0, 0, 4, 4, 4, 4)
	after := snapshotPicture(e, sig)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected masked draw to leave the picture area unchanged at index %d", i)
		}
	}
}

func snapshotPicture(e *SourceEncoder, sig *signal.InputSignal) []int8 {
	var out []int8
	for y := e.Geo.TOP; y < e.Geo.Bot; y++ {
		for x := e.Geo.PicStart; x < e.Geo.PicStart+e.Geo.PicLen; x++ {
			out = append(out, sig.At(y, x))
		}
	}
	return out
}

func rgbaAt(x, y int) color.RGBA {
	return color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255}
}
