/*
NAME
  scripted.go

DESCRIPTION
  scripted.go implements ScriptedController, reading a JSON schedule of
  (frame, action, knob) tuples and hot-reloading it via fsnotify when
  the file changes on disk, per spec.md §4.5's note that "a second
  controller kind, ScriptedController, may be added by reading a JSON
  schedule... the JSON schema is out of scope" (resolved here; see
  DESIGN.md).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package control

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/duskframe/ntsctv/engine"
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/signal"
)

// ScheduleEntry is one scripted event: at Frame, switch to Channel (if
// Action == "switch") and/or apply Knobs (a nil field in Knobs leaves that
// knob untouched; a set field, including an explicit 0, is applied).
type ScheduleEntry struct {
	Frame   int             `json:"frame"`
	Action  string          `json:"action"` // "switch", "none" or "quit"
	Channel int             `json:"channel"`
	Knobs   *KnobOverrides  `json:"knobs,omitempty"`
}

// KnobOverrides carries a sparse set of engine.Knobs field overrides; a
// nil pointer field means "leave unchanged".
type KnobOverrides struct {
	Tint       *float64 `json:"tint,omitempty"`
	Color      *float64 `json:"color,omitempty"`
	Brightness *float64 `json:"brightness,omitempty"`
	Contrast   *float64 `json:"contrast,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	Squish     *float64 `json:"squish,omitempty"`
	Powerup    *float64 `json:"powerup,omitempty"`
}

// Schedule is the top-level JSON document: a list of timed events.
type Schedule struct {
	Entries []ScheduleEntry `json:"entries"`
}

// ScriptedController replays a Schedule against frame_counter, reloading
// it from path whenever fsnotify reports a write.
type ScriptedController struct {
	path     string
	log      log.Logger
	channels []channel

	mu       sync.Mutex
	schedule Schedule
	cursor   int

	frameCounter int
	channelIdx   int

	watcher *fsnotify.Watcher
}

// scriptedChannelLevel is the reception level given to each source's
// channel: a clean, undistorted tuning, since a scripted run describes
// channel switches and knob overrides explicitly rather than drawing
// reception quality at random (contrast control.RandomController's
// buildChannels, spec.md §4.5.1).
const scriptedChannelLevel = 1.0

// NewScriptedController loads path and begins watching it for changes.
// One channel is built per source, each holding a single clean Reception
// of that source, so channel indices named by a schedule's "channel"
// field address sources 1:1.
func NewScriptedController(path string, sources []*signal.InputSignal, l log.Logger) (*ScriptedController, error) {
	if l == nil {
		l = log.Discard()
	}
	c := &ScriptedController{path: path, log: l}
	for _, src := range sources {
		c.channels = append(c.channels, channel{
			noiseLevel: signal.DefaultNoiseLevel,
			receptions: []signal.Reception{{Sig: src, Level: scriptedChannelLevel}},
		})
	}
	if err := c.reload(); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	c.watcher = w
	go c.watch()
	return c, nil
}

func (c *ScriptedController) reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}
	var sched Schedule
	if err := json.Unmarshal(data, &sched); err != nil {
		return err
	}
	c.mu.Lock()
	c.schedule = sched
	c.cursor = 0
	c.mu.Unlock()
	return nil
}

func (c *ScriptedController) watch() {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := c.reload(); err != nil {
					c.log.Warning("scripted controller reload failed", "path", c.path, "error", err)
				}
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.log.Warning("scripted controller watch error", "error", err)
		}
	}
}

// Close stops watching the schedule file.
func (c *ScriptedController) Close() error {
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Close()
}

// Next implements Controller.
func (c *ScriptedController) Next() (Action, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	action := None
	for c.cursor < len(c.schedule.Entries) && c.schedule.Entries[c.cursor].Frame <= c.frameCounter {
		e := c.schedule.Entries[c.cursor]
		switch e.Action {
		case "switch":
			c.channelIdx = e.Channel
			action = Switch
		case "quit":
			action = Quit
		}
		c.cursor++
	}

	c.frameCounter++
	return action, c.channelIdx
}

// Receptions implements Controller.
func (c *ScriptedController) Receptions() ([]signal.Reception, float32) {
	if c.channelIdx < 0 || c.channelIdx >= len(c.channels) {
		return nil, signal.DefaultNoiseLevel
	}
	ch := c.channels[c.channelIdx]
	return ch.receptions, ch.noiseLevel
}

// Apply implements Controller; ScriptedController only overrides knobs
// named explicitly by the most recently passed schedule entry.
func (c *ScriptedController) Apply(e *engine.TVEngine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor == 0 || c.cursor > len(c.schedule.Entries) {
		return
	}
	ov := c.schedule.Entries[c.cursor-1].Knobs
	if ov == nil {
		return
	}
	if ov.Tint != nil {
		e.Knobs.Tint = *ov.Tint
	}
	if ov.Color != nil {
		e.Knobs.Color = *ov.Color
	}
	if ov.Brightness != nil {
		e.Knobs.Brightness = *ov.Brightness
	}
	if ov.Contrast != nil {
		e.Knobs.Contrast = *ov.Contrast
	}
	if ov.Height != nil {
		e.Knobs.Height = *ov.Height
	}
	if ov.Width != nil {
		e.Knobs.Width = *ov.Width
	}
	if ov.Squish != nil {
		e.Knobs.Squish = *ov.Squish
	}
	if ov.Powerup != nil {
		e.Knobs.Powerup = *ov.Powerup
	}
}
