package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/neko-tower/constants"
)

// DecayMode selects how health drains on each tick
type DecayMode int

const (
	// DecayFixed drains the same amount every tick regardless of frame duration
	DecayFixed DecayMode = iota
	// DecayScaled drains DecayPerSecond multiplied by the tick's elapsed time
	DecayScaled
)

func (m DecayMode) String() string {
	if m == DecayScaled {
		return "scaled"
	}
	return "fixed"
}

// Settings are the tuning values of a round controller
type Settings struct {
	MaxHealth      float64
	ChopGain       float64
	DecayPerTick   float64
	DecayPerSecond float64
	DecayMode      DecayMode

	SeedPieces  int
	LeftChance  float64
	RightChance float64
	BonusChance float64
}

// DefaultSettings returns the arcade tuning
func DefaultSettings() Settings {
	return Settings{
		MaxHealth:      constants.MaxHealth,
		ChopGain:       constants.ChopHealthGain,
		DecayPerTick:   constants.DecayPerTick,
		DecayPerSecond: constants.DecayPerSecond,
		DecayMode:      DecayFixed,
		SeedPieces:     constants.SeedPieces,
		LeftChance:     constants.LeftChance,
		RightChance:    constants.RightChance,
		BonusChance:    constants.BonusChance,
	}
}

// Validate rejects settings that cannot produce a playable game
func (s Settings) Validate() error {
	if toUnits(s.MaxHealth) <= 0 {
		return fmt.Errorf("max health must be positive, got %v", s.MaxHealth)
	}
	if s.ChopGain < 0 || s.DecayPerTick < 0 || s.DecayPerSecond < 0 {
		return fmt.Errorf("health gain and decay rates must not be negative")
	}
	if s.SeedPieces < 0 {
		return fmt.Errorf("seed pieces must not be negative, got %d", s.SeedPieces)
	}
	if s.LeftChance < 0 || s.RightChance < 0 || s.LeftChance+s.RightChance > 1 {
		return fmt.Errorf("side chances must be non-negative and sum to at most 1, got %v + %v", s.LeftChance, s.RightChance)
	}
	if s.BonusChance < 0 || s.BonusChance > 1 {
		return fmt.Errorf("bonus chance must be within [0, 1], got %v", s.BonusChance)
	}
	if s.DecayMode != DecayFixed && s.DecayMode != DecayScaled {
		return fmt.Errorf("unknown decay mode %d", s.DecayMode)
	}
	return nil
}

// toUnits converts health to fixed-point units so repeated decay stays exact
func toUnits(h float64) int {
	return int(math.Round(h * constants.HealthScale))
}

func fromUnits(u int) float64 {
	return float64(u) / constants.HealthScale
}
