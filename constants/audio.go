package constants

import "time"

// Audio System
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond

	// MasterVolume is the default output level (0.0 - 1.0)
	MasterVolume = 0.6
)

// Sound Timing
const (
	ChopSoundDuration = 60 * time.Millisecond
	ChopSoundAttack   = 2 * time.Millisecond
	ChopSoundRelease  = 40 * time.Millisecond

	BellSoundDuration           = 500 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 450 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond

	FailSoundDuration = 450 * time.Millisecond
	FailSoundAttack   = 10 * time.Millisecond
	FailSoundRelease  = 300 * time.Millisecond
)
