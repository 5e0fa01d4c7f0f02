package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/neko-tower/tower"
)

// EventType identifies a game event published to listeners
type EventType int

const (
	EventStateChanged  EventType = iota // state machine entered a new state
	EventRoundScored                    // a chop survived and scored
	EventBonusConsumed                  // a bonus piece refilled health
	EventHealthChanged                  // health changed by a chop or a restart, not by decay
	EventGameOver                       // the session ended
)

func (t EventType) String() string {
	switch t {
	case EventStateChanged:
		return "state_changed"
	case EventRoundScored:
		return "round_scored"
	case EventBonusConsumed:
		return "bonus_consumed"
	case EventHealthChanged:
		return "health_changed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a snapshot of the round state at the moment something changed
type Event struct {
	Type   EventType
	RunID  uuid.UUID
	State  GameState
	Score  int
	Health float64
	Side   tower.Side
	Reason FailReason // set for EventGameOver
}

// Listener consumes game events
type Listener interface {
	OnGameEvent(ev Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnGameEvent(ev Event) { f(ev) }

// Listeners fans events out in order
type Listeners []Listener

func (ls Listeners) OnGameEvent(ev Event) {
	for _, l := range ls {
		l.OnGameEvent(ev)
	}
}
