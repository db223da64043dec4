package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flip-frenzy/internal/platform/input"
)

// KeyMapper translates Bubble Tea key messages into key names for the
// input tracker and into menu actions. Bubble Tea already names keys the
// way input.Keymap expects.
type KeyMapper struct {
	keymap input.Keymap
}

// NewKeyMapper creates a key mapper over km. A nil km uses the default layout.
func NewKeyMapper(km input.Keymap) *KeyMapper {
	if km == nil {
		km = input.DefaultKeymap()
	}
	return &KeyMapper{keymap: km}
}

// Keymap returns the game bindings.
func (km *KeyMapper) Keymap() input.Keymap {
	return km.keymap
}

// IsQuit reports whether msg ends the program.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	return input.IsQuit(msg.String())
}

// Bindings returns the game bindings of msg, or nil.
func (km *KeyMapper) Bindings(msg tea.KeyMsg) []input.Binding {
	return km.keymap.Lookup(msg.String())
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if input.IsQuit(key) {
		return MenuActionQuit
	}

	switch key {
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
