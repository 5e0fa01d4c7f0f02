package engine

import "github.com/lixenwraith/neko-tower/engine/fsm"

// GameState is the lifecycle state of a game session
type GameState int

const (
	StateTitle GameState = iota + 1
	StateReady
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

func (s GameState) id() fsm.StateID {
	return fsm.StateID(s)
}

// Machine inputs
const (
	InputPrimary fsm.EventType = iota + 1 // arg: tower.Side
	InputTick                             // arg: time.Duration
	InputRestart                          // arg: nil
	InputFail                             // arg: FailReason
)

// FailReason says why a game ended
type FailReason int

const (
	ReasonNone FailReason = iota
	ReasonCollision
	ReasonHealthDepleted
)

func (r FailReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonHealthDepleted:
		return "health_depleted"
	default:
		return "unknown"
	}
}

// PrimaryAction is what the primary button currently does
type PrimaryAction int

const (
	ActionPlay PrimaryAction = iota
	ActionRestart
)

func (a PrimaryAction) String() string {
	if a == ActionRestart {
		return "restart"
	}
	return "play"
}
