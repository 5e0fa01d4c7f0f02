package audio

import "github.com/lixenwraith/neko-tower/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundChop SoundType = iota // Piece knocked off the tower
	SoundBell                  // Bonus piece chopped, health refilled
	SoundFail                  // Game over
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundChop:
		return "chop"
	case SoundBell:
		return "bell"
	case SoundFail:
		return "fail"
	default:
		return "unknown"
	}
}

// AudioConfig holds output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.MasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundChop: 0.7,
			SoundBell: 1.0,
			SoundFail: 0.8,
		},
	}
}
