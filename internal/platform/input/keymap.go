// Package input turns terminal key presses into per-player input frames.
// Terminals report presses but not releases, so held state is emulated by
// keeping a key down for a short window after each press.
package input

import "github.com/vovakirdan/flip-frenzy/internal/core"

// Binding is one action of one player.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// Keymap maps key names to bindings. Key names follow Bubble Tea's
// KeyMsg.String() form ("left", "enter", " ", "a"); other frontends
// translate to the same names.
type Keymap map[string][]Binding

// Quit keys are handled by the frontend and never reach the game.
var quitKeys = map[string]bool{
	"ctrl+c": true,
	"q":      true,
}

// IsQuit reports whether key ends the program.
func IsQuit(key string) bool {
	return quitKeys[key]
}

// DefaultKeymap returns the standard two-player layout: arrows and space for
// player 1, WASD for player 2. Enter and the pause keys act for player 1.
func DefaultKeymap() Keymap {
	p1, p2 := core.Player1, core.Player2
	return Keymap{
		"left":  {{p1, core.ActionLeft}},
		"right": {{p1, core.ActionRight}},
		"up":    {{p1, core.ActionJump}, {p1, core.ActionUp}},
		" ":     {{p1, core.ActionJump}},
		"down":  {{p1, core.ActionDown}},

		"a": {{p2, core.ActionLeft}},
		"d": {{p2, core.ActionRight}},
		"w": {{p2, core.ActionJump}, {p2, core.ActionUp}},
		"s": {{p2, core.ActionDown}},

		"enter": {{p1, core.ActionConfirm}},
		"p":     {{p1, core.ActionPause}},
		"esc":   {{p1, core.ActionPause}},
	}
}

// Lookup returns the bindings of key, or nil.
func (k Keymap) Lookup(key string) []Binding {
	return k[key]
}

// Keys returns the key names bound to action for player id.
func (k Keymap) Keys(id core.PlayerID, action core.Action) []string {
	var keys []string
	for key, bindings := range k {
		for _, b := range bindings {
			if b.Player == id && b.Action == action {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}
