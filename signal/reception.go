/*
NAME
  reception.go

DESCRIPTION
  reception.go provides Reception, the per-frame transport parameters for
  one InputSignal arriving at the tuner, and ChannelSetting, the tuner-slot
  record of up to MaxMultichan Receptions plus a noise level, per
  specification §3.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package signal

// Reception is a plain-old-data record describing how one InputSignal
// (borrowed, not owned) is currently arriving at the tuner. Reception is
// updated once per frame by the Controller/Runner before TVEngine.Draw is
// called.
type Reception struct {
	Sig *InputSignal // borrowed

	Ofs       int // [0, SignalLen)
	Level     float32
	Multipath float32 // [0, 1]
	FreqErr   float32 // [-3, 3]

	GhostFIR  [GhostFIRLen]float32
	GhostFIR2 [GhostFIRLen]float32

	HFLoss  float32
	HFLoss2 float32
}

// ChannelSetting represents "tuner set to this channel": up to
// MaxMultichan Receptions (the first the primary, the second, when
// present, a ghost) plus a noise level.
type ChannelSetting struct {
	Receptions []Reception // len <= MaxMultichan
	NoiseLevel float32
}

// DefaultNoiseLevel is the default per-channel noise level named in the
// specification.
const DefaultNoiseLevel = 0.06
