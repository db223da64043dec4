package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	"github.com/vovakirdan/flip-frenzy/internal/platform/input"
	"github.com/vovakirdan/flip-frenzy/internal/registry"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

// EventSink receives the events of every tick.
type EventSink interface {
	Handle(events []core.Event)
}

// Options are the collaborators of a game run. Every field is optional.
type Options struct {
	Store         *storage.Store
	Sound         EventSink
	Logger        *log.Logger
	Keymap        input.Keymap
	ScreenshotDir string // default ~/.arcade/screenshots
}

// Optional game capabilities the model wires up when present.
type (
	readoutGame interface {
		SetReadout(r flipfrenzy.Readout)
	}
	highScoreGame interface {
		SetHighScoreStore(s flipfrenzy.HighScoreStore)
	}
	loggingGame interface {
		SetLogger(l *log.Logger)
	}
	scoringGame interface {
		PlayerScores() map[core.PlayerID]int
	}
)

// hudRows is the height of the HUD above the playfield.
const hudRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	hud        *HUD
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *input.Held
	clock      func() time.Time
	gameState  core.GameState
	lastMatch  string // ID of the last saved match
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game and attaches the HUD, high-score
// persistence and logger to games that support them.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}

	keys := NewKeyMapper(opts.Keymap)
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		hud:    NewHUD(),
		opts:   opts,
		config: cfg,
		keys:   keys,
		held:   input.NewHeld(keys.Keymap(), input.DefaultHoldTimeout),
		clock:  time.Now,
	}

	if g, ok := game.(loggingGame); ok {
		g.SetLogger(opts.Logger)
	}
	if g, ok := game.(highScoreGame); ok && opts.Store != nil {
		g.SetHighScoreStore(storage.NewHighScoreKeeper(opts.Store, game.ID()))
	}
	if g, ok := game.(readoutGame); ok {
		g.SetReadout(m.hud)
	}
	return m
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func playfieldHeight(screenH int) int {
	return max(screenH-hudRows, 1)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses for the next tick. Quit, screenshot and back
// are handled here and never reach the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.canLeave() {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.held.Press(msg.String(), m.clock())
	return m, nil
}

// canLeave reports whether no match is running.
func (m Model) canLeave() bool {
	switch m.gameState.Phase {
	case flipfrenzy.PhasePlaying, flipfrenzy.PhaseTransition:
		return false
	}
	return true
}

// handleResize resizes the buffers. The draw list scales to any size, so
// the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// handleTick advances the game one step with the keys held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame(now))
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.opts.Sound != nil {
		m.opts.Sound.Handle(result.Events)
	}
	if m.gameState.GameOver && !wasOver {
		m.saveMatch()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveMatch records the finished match. Failures are logged and ignored.
func (m *Model) saveMatch() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	g, ok := m.game.(scoringGame)
	if !ok {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.opts.Logger.Warn("save score", "game", m.game.ID(), "err", err)
		}
		return
	}

	id, err := m.opts.Store.SaveMatch(storage.MatchResult{
		GameID: m.game.ID(),
		Level:  m.gameState.Level,
		Scores: g.PlayerScores(),
	})
	if err != nil {
		m.opts.Logger.Warn("save match", "game", m.game.ID(), "err", err)
		return
	}
	m.lastMatch = id
	m.opts.Logger.Info("match saved", "game", m.game.ID(), "match", id, "score", m.gameState.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the HUD and the playfield.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.hud.View(m.config.ScreenW) + "\n" + RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastMatch returns the ID of the last saved match, or "".
func (m Model) LastMatch() string {
	return m.lastMatch
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
