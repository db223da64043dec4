package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

type slot struct {
	score   int
	lives   int
	visible bool
}

// Readout holds the HUD values pushed by the game and draws them on the
// top row.
type Readout struct {
	high  int
	slots [2]slot
}

// NewReadout creates a readout showing player 1 only.
func NewReadout() *Readout {
	r := &Readout{}
	r.slots[0].visible = true
	return r
}

func (r *Readout) slot(id core.PlayerID) *slot {
	if id != core.Player1 && id != core.Player2 {
		return nil
	}
	return &r.slots[id-1]
}

func (r *Readout) SetHighScore(score int) { r.high = score }

func (r *Readout) SetPlayerScore(id core.PlayerID, score int) {
	if s := r.slot(id); s != nil {
		s.score = score
	}
}

func (r *Readout) SetPlayerLives(id core.PlayerID, lives int) {
	if s := r.slot(id); s != nil {
		s.lives = lives
	}
}

func (r *Readout) SetPlayerVisible(id core.PlayerID, visible bool) {
	if s := r.slot(id); s != nil {
		s.visible = visible
	}
}

// Line returns the readout text for player id, or "" when hidden.
func (r *Readout) Line(id core.PlayerID) string {
	s := r.slot(id)
	if s == nil || !s.visible {
		return ""
	}
	return fmt.Sprintf("%s ♥%d %06d", id, s.lives, s.score)
}

// HighLine returns the high-score text.
func (r *Readout) HighLine() string {
	return fmt.Sprintf("HI %06d", r.high)
}

// draw writes the readout on row 0 of a width-wide screen.
func (r *Readout) draw(screen tcell.Screen, width int) {
	bar := tcell.StyleDefault.Background(tcell.PaletteColor(236))
	for x := range width {
		screen.SetContent(x, 0, ' ', nil, bar)
	}

	put := func(x int, text string, fg int) {
		style := bar.Foreground(tcell.PaletteColor(fg)).Bold(true)
		for _, ch := range text {
			if x >= width {
				return
			}
			if x >= 0 {
				screen.SetContent(x, 0, ch, nil, style)
			}
			x++
		}
	}

	p1, p2, hi := r.Line(core.Player1), r.Line(core.Player2), r.HighLine()
	put(0, p1, 11)
	put((width-len([]rune(hi)))/2, hi, 229)
	put(width-len([]rune(p2)), p2, 14)
}
