package constants

import "time"

// Layout
const (
	PieceWidth      = 9  // Plate width in cells, chopsticks excluded
	ChopstickWidth  = 4  // Chopstick length in cells
	CharacterOffset = 3  // Gap between plate edge and character column
	HealthBarWidth  = 30 // Health bar width in cells at full health
	MaxVisibleRows  = 40 // Tower rows drawn at most
)

// Transient Effects
const (
	FlipDuration  = 180 * time.Millisecond
	DropDuration  = 100 * time.Millisecond
	ShakeDuration = 400 * time.Millisecond
	PunchDuration = 120 * time.Millisecond
)
