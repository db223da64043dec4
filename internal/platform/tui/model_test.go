package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

type recordingSink struct {
	events []core.Event
}

func (r *recordingSink) Handle(events []core.Event) {
	r.events = append(r.events, events...)
}

func (r *recordingSink) has(kind core.EventKind) bool {
	for _, ev := range r.events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// harness drives a Model with a manual clock.
type harness struct {
	t    *testing.T
	m    Model
	game *flipfrenzy.Game
	now  time.Time
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	game := flipfrenzy.NewWithConfig(config.DefaultFlipConfig())
	h := &harness{
		t:    t,
		game: game,
		now:  time.Unix(1_700_000_000, 0),
	}
	h.m = NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}, opts)
	h.m.clock = func() time.Time { return h.now }
	h.m.Init()
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func (h *harness) key(s string) tea.Cmd {
	return h.update(keyMsg(s))
}

// tick advances the clock one frame and steps the game.
func (h *harness) tick() {
	h.now = h.now.Add(time.Second / 60)
	h.update(TickMsg(h.now))
}

// idle ticks until movement keys have decayed. Confirm and pause stay
// held longer, which the game ignores while playing.
func (h *harness) idle() {
	for range 12 {
		h.tick()
	}
}

func (h *harness) start() {
	h.t.Helper()
	h.key("enter")
	h.tick()
	h.idle()
	if h.game.Phase() != flipfrenzy.PhasePlaying {
		h.t.Fatalf("phase = %q after enter, want playing", h.game.Phase())
	}
}

func TestModelStartsMatch(t *testing.T) {
	h := newHarness(t, Options{})
	h.tick()
	if got := h.m.State().Phase; got != flipfrenzy.PhaseMenu {
		t.Fatalf("phase = %q, want menu", got)
	}
	h.start()
	if got := h.m.State().Players; got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
}

func TestModelTwoPlayerSelection(t *testing.T) {
	h := newHarness(t, Options{})
	h.key("down")
	h.tick()
	h.idle()
	h.start()
	if got := h.m.State().Players; got != 2 {
		t.Errorf("players = %d, want 2", got)
	}
}

func TestModelSendsEventsToSink(t *testing.T) {
	sink := &recordingSink{}
	h := newHarness(t, Options{Sound: sink})
	h.start()

	h.key(" ")
	h.tick()

	if !sink.has(core.EventJump) {
		t.Errorf("sink got %v, want a jump", sink.events)
	}
}

func TestModelPauseKey(t *testing.T) {
	h := newHarness(t, Options{})
	h.start()

	h.key("esc")
	h.tick()
	if !h.m.State().Paused {
		t.Fatalf("phase = %q after esc, want paused", h.m.State().Phase)
	}

	// Holding esc must not unpause.
	h.key("esc")
	h.tick()
	if !h.m.State().Paused {
		t.Error("repeat esc within the hold window unpaused")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	h := newHarness(t, Options{})
	if cmd := h.key("q"); cmd == nil || !h.m.IsQuitting() {
		t.Error("q did not quit")
	}

	h = newHarness(t, Options{})
	h.start()
	h.key("b")
	if h.m.BackToMenu() {
		t.Error("b left a running match")
	}

	h = newHarness(t, Options{})
	h.tick()
	if h.key("b"); !h.m.BackToMenu() {
		t.Error("b in the game menu did not go back")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	h := newHarness(t, Options{})
	h.start()
	p1 := h.game.World().Player(core.Player1)

	h.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.tick()

	if h.game.Phase() != flipfrenzy.PhasePlaying {
		t.Errorf("phase = %q after resize, want playing", h.game.Phase())
	}
	if h.game.World().Player(core.Player1) != p1 {
		t.Error("resize restarted the match")
	}
	if h.m.screen.Width() != 120 || h.m.screen.Height() != 40-hudRows {
		t.Errorf("screen = %dx%d, want 120x%d", h.m.screen.Width(), h.m.screen.Height(), 40-hudRows)
	}
}

func TestModelSavesMatchOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := newHarness(t, Options{Store: store})
	h.start()

	w := h.game.World()
	p := w.Player(core.Player1)
	p.Score = 500
	p.Lives = 0
	p.Dead = true
	h.tick()

	if !h.m.State().GameOver {
		t.Fatalf("phase = %q, want gameOver", h.m.State().Phase)
	}
	if h.m.LastMatch() == "" {
		t.Fatal("match not saved")
	}

	// A second game-over tick must not save again.
	h.tick()
	scores, err := store.TopScores(flipfrenzy.ID, 1, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 500 || scores[0].Level != 1 {
		t.Errorf("scores = %+v, want one 500 at level 1", scores)
	}
	if best, _ := store.HighScore(flipfrenzy.ID); best != 500 {
		t.Errorf("HighScore = %d, want 500", best)
	}
}

func TestModelViewHasHUD(t *testing.T) {
	h := newHarness(t, Options{})
	h.start()
	h.game.World().Player(core.Player1).Score = 1234
	h.tick()

	view := h.m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Errorf("view has %d lines, want 25", len(lines))
	}
	if !strings.Contains(lines[0], "001234") {
		t.Errorf("HUD line %q lacks the score", lines[0])
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, Options{ScreenshotDir: dir})
	h.tick()
	h.key("ctrl+s")

	files, err := filepath.Glob(filepath.Join(dir, flipfrenzy.ID+"_*.txt"))
	if err != nil || len(files) != 1 {
		t.Errorf("screenshots = %v (%v), want one", files, err)
	}
}
