package audio

import "math"

// NewAudioConfig builds an output config from file settings
func NewAudioConfig(enabled bool, masterVolume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = math.Max(0, math.Min(1, masterVolume))
	return cfg
}
