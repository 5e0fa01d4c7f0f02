package input

import "github.com/lixenwraith/neko-tower/tower"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentPause      // p
	IntentResize     // Terminal resize event

	// Game intents
	IntentPrimary // arrows, h/l, a/d, Space, Enter, mouse
	IntentRestart // r
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentPause:      "pause",
	IntentResize:     "resize",
	IntentPrimary:    "primary",
	IntentRestart:    "restart",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is the resolved meaning of one terminal event
type Intent struct {
	Type IntentType
	Side tower.Side // Chop side for IntentPrimary, None for a neutral press
}
