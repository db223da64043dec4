package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

var (
	hudP1Style   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hudP2Style   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	hudHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	hudBarStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)

type hudPlayer struct {
	score   int
	lives   int
	visible bool
}

// HUD is the one-line score bar above the playfield. The game pushes
// values into it through its Readout methods.
type HUD struct {
	high    int
	players [2]hudPlayer
}

// NewHUD creates a HUD showing player 1 only.
func NewHUD() *HUD {
	h := &HUD{}
	h.players[0].visible = true
	return h
}

func (h *HUD) slot(id core.PlayerID) *hudPlayer {
	if id < core.Player1 || id > core.Player2 {
		return nil
	}
	return &h.players[id-1]
}

// SetHighScore shows a new high score.
func (h *HUD) SetHighScore(score int) {
	h.high = score
}

// SetPlayerScore shows a player's score.
func (h *HUD) SetPlayerScore(id core.PlayerID, score int) {
	if p := h.slot(id); p != nil {
		p.score = score
	}
}

// SetPlayerLives shows a player's remaining lives.
func (h *HUD) SetPlayerLives(id core.PlayerID, lives int) {
	if p := h.slot(id); p != nil {
		p.lives = lives
	}
}

// SetPlayerVisible shows or hides a player's readout.
func (h *HUD) SetPlayerVisible(id core.PlayerID, visible bool) {
	if p := h.slot(id); p != nil {
		p.visible = visible
	}
}

func (h *HUD) playerText(id core.PlayerID) string {
	p := h.slot(id)
	if p == nil || !p.visible {
		return ""
	}
	return fmt.Sprintf("%s ♥%d %06d", id, p.lives, p.score)
}

// hudMinWidth fits three columns of the widest readout.
const hudMinWidth = 48

// View renders the bar at the given width.
func (h *HUD) View(width int) string {
	if width <= 0 {
		return ""
	}
	if width < hudMinWidth {
		line := fmt.Sprintf("%s  HI %06d", h.playerText(core.Player1), h.high)
		return hudBarStyle.Inline(true).MaxWidth(width).Render(line)
	}
	third := width / 3
	left := lipgloss.NewStyle().Width(third).Align(lipgloss.Left).
		Render(hudP1Style.Render(h.playerText(core.Player1)))
	mid := lipgloss.NewStyle().Width(third).Align(lipgloss.Center).
		Render(hudHighStyle.Render(fmt.Sprintf("HI %06d", h.high)))
	right := lipgloss.NewStyle().Width(width - 2*third).Align(lipgloss.Right).
		Render(hudP2Style.Render(h.playerText(core.Player2)))
	return hudBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right))
}
