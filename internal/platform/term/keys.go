// Package term runs a game directly on a tcell screen, without Bubble Tea.
package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyTab:    "tab",
	tcell.KeyCtrlC:  "ctrl+c",
}

// KeyName names a tcell key the way input.Keymap expects. Letters are
// lowercased so caps lock does not change bindings.
func KeyName(key tcell.Key, r rune) string {
	if key == tcell.KeyRune {
		return string(unicode.ToLower(r))
	}
	return keyNames[key]
}

// palette maps core colors to the 256-color palette, matching the TUI.
var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
	core.ColorIce:           153,
	core.ColorBrown:         130,
}

// styleFor returns the tcell style of a cell color.
func styleFor(c core.Color) tcell.Style {
	idx, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
