package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neko-tower/tower"
)

// Machine resolves terminal events to intents using a key table
type Machine struct {
	keyTable *KeyTable
	// Button1 state seen on the previous mouse event
	pressed bool
}

// NewMachine creates a resolver. A nil table uses the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Process resolves one event. width is the screen width used for mouse sides
func (m *Machine) Process(ev tcell.Event, width int) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev, width)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if entry, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return Intent{Type: entry.IntentType, Side: entry.Side}
		}
		return Intent{}
	}
	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.IntentType, Side: entry.Side}
	}
	return Intent{}
}

// processMouse maps a button press to the half of the screen it landed on
// Only the press edge counts; moving with the button held carries no intent
func (m *Machine) processMouse(ev *tcell.EventMouse, width int) Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.pressed
	m.pressed = down
	if !down || wasDown {
		return Intent{}
	}
	x, _ := ev.Position()
	return Intent{Type: IntentPrimary, Side: SideAt(x, width)}
}

// SideAt returns the side of a screen column relative to the center
func SideAt(x, width int) tower.Side {
	center := width / 2
	switch {
	case x < center:
		return tower.Left
	case x > center:
		return tower.Right
	default:
		return tower.None
	}
}
