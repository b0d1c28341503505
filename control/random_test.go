package control

import (
	"math/rand"
	"testing"

	"github.com/duskframe/ntsctv/signal"
)

func newSources(n int, geo signal.Geometry) []*signal.InputSignal {
	out := make([]*signal.InputSignal, n)
	for i := range out {
		out[i] = signal.New(geo)
	}
	return out
}

func TestRandomControllerChannelTableSize(t *testing.T) {
	geo := signal.NewGeometry(1)
	c := NewRandomController(RandomControllerConfig{
		Sources:   newSources(2, geo),
		Geo:       geo,
		DurationS: 10,
		Rand:      rand.New(rand.NewSource(1)),
	})
	if got, want := len(c.channels), 6; got != want {
		t.Fatalf("expected max(2*2,6)=6 channels, got %d", got)
	}

	c2 := NewRandomController(RandomControllerConfig{
		Sources:   newSources(5, geo),
		Geo:       geo,
		DurationS: 10,
		Rand:      rand.New(rand.NewSource(1)),
	})
	if got, want := len(c2.channels), 10; got != want {
		t.Fatalf("expected 2*5=10 channels, got %d", got)
	}
}

func TestRandomControllerFixSettings(t *testing.T) {
	geo := signal.NewGeometry(1)
	c := NewRandomController(RandomControllerConfig{
		Sources:     newSources(3, geo),
		Geo:         geo,
		DurationS:   10,
		FixSettings: true,
		Rand:        rand.New(rand.NewSource(1)),
	})
	for _, ch := range c.channels {
		for _, r := range ch.receptions {
			if r.Level != 0.3 || r.Ofs != 0 || r.Multipath != 0 || r.FreqErr != 0 {
				t.Fatalf("fixsettings reception not fixed: %+v", r)
			}
		}
	}
}

func TestRandomControllerNextReturnsQuitAfterDuration(t *testing.T) {
	geo := signal.NewGeometry(1)
	c := NewRandomController(RandomControllerConfig{
		Sources:   newSources(1, geo),
		Geo:       geo,
		DurationS: 1,
		FPS:       10,
		Rand:      rand.New(rand.NewSource(1)),
	})

	var sawQuit bool
	for i := 0; i < 40; i++ {
		action, _ := c.Next()
		if action == Quit {
			sawQuit = true
			break
		}
	}
	if !sawQuit {
		t.Fatalf("expected Next to eventually return Quit within the configured duration")
	}
}

func TestRandomControllerPowerUpForcesEarlyPowerup(t *testing.T) {
	geo := signal.NewGeometry(1)
	c := NewRandomController(RandomControllerConfig{
		Sources:     newSources(1, geo),
		Geo:         geo,
		DurationS:   20,
		FPS:         10,
		PowerUpDown: true,
		Rand:        rand.New(rand.NewSource(1)),
	})
	c.Next()
	if c.knobs.powerup >= powerupDurationS {
		t.Fatalf("expected powerup to track curtime during warm-up, got %v", c.knobs.powerup)
	}
}
