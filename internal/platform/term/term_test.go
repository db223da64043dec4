package term

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyLeft, 0, "left"},
		{tcell.KeyRight, 0, "right"},
		{tcell.KeyUp, 0, "up"},
		{tcell.KeyDown, 0, "down"},
		{tcell.KeyEnter, 0, "enter"},
		{tcell.KeyEscape, 0, "esc"},
		{tcell.KeyCtrlC, 0, "ctrl+c"},
		{tcell.KeyRune, ' ', " "},
		{tcell.KeyRune, 'a', "a"},
		{tcell.KeyRune, 'W', "w"},
		{tcell.KeyF1, 0, ""},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyName(%v, %q) = %q, want %q", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color is styled")
	}
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(153))
	if styleFor(core.ColorIce) != want {
		t.Error("ice color does not map to palette 153")
	}
}

func TestReadout(t *testing.T) {
	r := NewReadout()
	r.SetHighScore(700)
	r.SetPlayerScore(core.Player1, 50)
	r.SetPlayerLives(core.Player1, 2)
	r.SetPlayerScore(core.Player2, 10)

	if got := r.Line(core.Player1); got != "P1 ♥2 000050" {
		t.Errorf("P1 line = %q", got)
	}
	if got := r.Line(core.Player2); got != "" {
		t.Errorf("hidden P2 line = %q", got)
	}
	r.SetPlayerVisible(core.Player2, true)
	if got := r.Line(core.Player2); got != "P2 ♥0 000010" {
		t.Errorf("P2 line = %q", got)
	}
	if got := r.HighLine(); got != "HI 000700" {
		t.Errorf("high line = %q", got)
	}
}

func newTestFrontend(t *testing.T, opts Options) (*Frontend, *flipfrenzy.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	game := flipfrenzy.NewWithConfig(config.DefaultFlipConfig())
	f := New(screen, game, core.RuntimeConfig{TickRate: 60, Seed: 9}, opts)
	return f, game
}

func TestFrontendPlaysMatch(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	f, game := newTestFrontend(t, Options{Store: store})
	if f.buf.Width() != 80 || f.buf.Height() != 24 {
		t.Fatalf("buffer = %dx%d, want 80x24", f.buf.Width(), f.buf.Height())
	}

	now := time.Unix(1_700_000_000, 0)
	if f.HandleKey("enter", now) {
		t.Fatal("enter quits")
	}
	for range 12 {
		now = now.Add(time.Second / 60)
		f.Tick(now)
	}
	f.Draw()
	if game.Phase() != flipfrenzy.PhasePlaying {
		t.Fatalf("phase = %q, want playing", game.Phase())
	}

	p := game.World().Player(core.Player1)
	p.Score = 250
	p.Lives = 0
	p.Dead = true
	f.Tick(now.Add(time.Second / 60))

	if !f.State().GameOver {
		t.Fatalf("phase = %q, want gameOver", f.State().Phase)
	}
	if f.lastMatch == "" {
		t.Error("match not saved")
	}
	if got := f.readout.HighLine(); got != "HI 000250" {
		t.Errorf("readout high = %q, want HI 000250", got)
	}
}

func TestFrontendQuitKeys(t *testing.T) {
	f, _ := newTestFrontend(t, Options{})
	now := time.Now()
	if !f.HandleKey("q", now) || !f.HandleKey("ctrl+c", now) {
		t.Error("quit keys do not quit")
	}
	if f.HandleKey("left", now) {
		t.Error("left quits")
	}
}
