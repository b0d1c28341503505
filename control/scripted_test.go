package control

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/signal"
)

func writeSchedule(t *testing.T, sched Schedule) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.json")
	data, err := json.Marshal(sched)
	if err != nil {
		t.Fatalf("marshal schedule: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write schedule: %v", err)
	}
	return path
}

func TestScriptedControllerReceptionsAreWired(t *testing.T) {
	geo := signal.NewGeometry(1)
	sources := []*signal.InputSignal{signal.New(geo), signal.New(geo)}

	path := writeSchedule(t, Schedule{Entries: []ScheduleEntry{
		{Frame: 0, Action: "switch", Channel: 1},
	}})

	c, err := NewScriptedController(path, sources, nil)
	if err != nil {
		t.Fatalf("NewScriptedController: %v", err)
	}
	defer c.Close()

	action, ch := c.Next()
	if action != Switch || ch != 1 {
		t.Fatalf("Next() = (%v, %d), want (Switch, 1)", action, ch)
	}

	recs, _ := c.Receptions()
	if len(recs) != 1 {
		t.Fatalf("Receptions() returned %d receptions, want 1", len(recs))
	}
	if recs[0].Sig != sources[1] {
		t.Fatal("channel 1's reception should wrap sources[1]")
	}
	if recs[0].Level == 0 {
		t.Fatal("channel reception should have a non-zero level")
	}
}

func TestScriptedControllerAppliesKnobOverrides(t *testing.T) {
	geo := signal.NewGeometry(1)
	sources := []*signal.InputSignal{signal.New(geo)}

	tint := 42.0
	path := writeSchedule(t, Schedule{Entries: []ScheduleEntry{
		{Frame: 0, Action: "switch", Channel: 0, Knobs: &KnobOverrides{Tint: &tint}},
	}})

	c, err := NewScriptedController(path, sources, nil)
	if err != nil {
		t.Fatalf("NewScriptedController: %v", err)
	}
	defer c.Close()

	c.Next()

	e := engine.New(geo, nil, 1, 1)
	c.Apply(e)
	if e.Knobs.Tint != tint {
		t.Fatalf("Knobs.Tint = %v, want %v", e.Knobs.Tint, tint)
	}
}
