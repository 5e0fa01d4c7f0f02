package constants

// Health System
const (
	// HealthScale is the number of fixed-point units in 1.0 health
	HealthScale = 1000

	// MaxHealth is the full health bar
	MaxHealth = 1.0

	// ChopHealthGain is restored by every non-fatal chop of a plain piece
	ChopHealthGain = 0.1

	// DecayPerTick is drained from health on every playing tick
	DecayPerTick = 0.01

	// DecayPerSecond is the drain rate when decay is scaled by frame duration
	DecayPerSecond = 0.6
)
