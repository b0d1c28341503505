/*
NAME
  geometry.go

DESCRIPTION
  geometry.go defines the fixed NTSC timing geometry described by the
  specification §3: line/frame counts and within-line timing boundaries,
  all scaled by an integer factor S >= 1.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package signal provides the NTSC geometry and the InputSignal, Reception
// and ChannelSetting data types that the encoder and engine operate on.
package signal

// IRE-scaled signal levels (signed 8-bit composite samples).
const (
	White  int8 = 100
	Gray50 int8 = 55
	Gray30 int8 = 35
	Black  int8 = 10
	Blank  int8 = 0
	Sync   int8 = -40
	CB     int8 = 20
)

// GhostFIRLen is the number of taps in a Reception's ghost FIR.
const GhostFIRLen = 4

// MaxLineHeight bounds the level-table dimension used by the renderer.
const MaxLineHeight = 12

// MaxMultichan is the maximum number of Receptions making up one channel.
const MaxMultichan = 2

// Geometry holds the fixed NTSC timing constants for a given scale factor.
// All counts scale linearly with S; S=1 reproduces the canonical geometry
// named in the specification.
type Geometry struct {
	S int

	V        int // total lines per frame
	H        int // samples per line (4x colourburst rate)
	TOP      int
	VisLines int
	Bot      int

	SyncStart int
	BPStart   int
	CBStart   int
	PicStart  int
	PicLen    int
	FPStart   int
	PicEnd    int

	VisStart int
	VisEnd   int

	SignalLen int
}

// NewGeometry computes the Geometry for scale factor s. s must be >= 1.
func NewGeometry(s int) Geometry {
	if s < 1 {
		s = 1
	}
	g := Geometry{S: s}
	g.V = 262 * s
	g.H = 912 * s
	g.TOP = 30 * s
	g.VisLines = 200 * s
	g.Bot = g.TOP + g.VisLines

	// Within-line positions, scaled from a 63,500ns line.
	g.SyncStart = 0
	g.BPStart = 4700 * g.H / 63500
	g.CBStart = 5800 * g.H / 63500
	g.PicStart = 9400 * g.H / 63500
	g.PicLen = 52600 * g.H / 63500
	g.FPStart = 62000 * g.H / 63500
	g.PicEnd = g.FPStart

	g.VisStart = g.PicStart + g.PicLen/8
	g.VisEnd = g.PicStart + 7*g.PicLen/8

	g.SignalLen = g.V * g.H
	return g
}

// DefaultGeometry is the canonical S=1 geometry.
var DefaultGeometry = NewGeometry(1)
