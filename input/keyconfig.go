package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neko-tower/tower"
)

// Aliases for keys that can't be bare single-char YAML values
var runeAliases = map[string]rune{
	"space": ' ',
}

var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"ctrl+c": tcell.KeyCtrlC,
}

// actionRegistry maps canonical action names to key entries
var actionRegistry = map[string]KeyEntry{
	"none":        {},
	"quit":        {IntentQuit, tower.None},
	"toggle_mute": {IntentToggleMute, tower.None},
	"pause":       {IntentPause, tower.None},
	"restart":     {IntentRestart, tower.None},
	"primary":     {IntentPrimary, tower.None},
	"chop_left":   {IntentPrimary, tower.Left},
	"chop_right":  {IntentPrimary, tower.Right},
}

// ApplyBindings overlays action → keys bindings on a copy of base
// Returns error on unknown action names or invalid key names
func ApplyBindings(base *KeyTable, bindings map[string][]string) (*KeyTable, error) {
	kt := base.Clone()

	// Deterministic order so a key bound twice resolves the same way every run
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		entry, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		for _, name := range bindings[action] {
			if err := kt.bind(name, entry); err != nil {
				return nil, fmt.Errorf("keymap %s: %w", action, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(name string, entry KeyEntry) error {
	lower := strings.ToLower(name)
	if key, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[key] = entry
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = entry
		return nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return fmt.Errorf("invalid key name %q", name)
	}
	kt.Runes[runes[0]] = entry
	return nil
}
