package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neko-tower/tower"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Side       tower.Side
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, tower.None},
			tcell.KeyEscape: {IntentQuit, tower.None},
			tcell.KeyLeft:   {IntentPrimary, tower.Left},
			tcell.KeyRight:  {IntentPrimary, tower.Right},
			tcell.KeyEnter:  {IntentPrimary, tower.None},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentQuit, tower.None},
			'm': {IntentToggleMute, tower.None},
			'p': {IntentPause, tower.None},
			'r': {IntentRestart, tower.None},
			' ': {IntentPrimary, tower.None},
			'h': {IntentPrimary, tower.Left},
			'a': {IntentPrimary, tower.Left},
			'l': {IntentPrimary, tower.Right},
			'd': {IntentPrimary, tower.Right},
		},
	}
}

// Clone returns an independent copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}
