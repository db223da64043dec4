// Package flipfrenzy implements Flip Frenzy: players bump platforms from
// below to flip the enemies walking on them, then kick the flipped enemies
// off the screen before they recover.
package flipfrenzy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "flipfrenzy"

// Game-flow phases
const (
	PhaseMenu       = "menu"
	PhasePlaying    = "playing"
	PhaseTransition = "levelTransition"
	PhasePaused     = "paused"
	PhaseGameOver   = "gameOver"
)

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// Readout receives HUD values whenever they change.
type Readout interface {
	SetHighScore(score int)
	SetPlayerScore(id core.PlayerID, score int)
	SetPlayerLives(id core.PlayerID, lives int)
	SetPlayerVisible(id core.PlayerID, visible bool)
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// published is the last HUD state pushed to the readout.
type published struct {
	score, lives int
}

// Game implements the Flip Frenzy flow around a World.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.FlipConfig
	fixedCfg *config.FlipConfig

	world      *World
	phase      string
	numPlayers int // menu selection
	matches    int
	transition float64 // ms left in the level banner
	prev       core.MultiInputFrame

	highScore int
	store     HighScoreStore
	readout   Readout
	shown     map[core.PlayerID]published
	logger    *log.Logger
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{
		numPlayers: 1,
		logger:     log.New(io.Discard),
		shown:      make(map[core.PlayerID]published),
	}
}

// NewWithConfig creates a game bound to cfg, skipping file lookup.
func NewWithConfig(cfg config.FlipConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// SetLogger replaces the discard logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(ID)
	}
}

// SetHighScoreStore attaches persistence and reads the stored high score once.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	g.store = s
	if s == nil {
		return
	}
	score, err := s.ReadHighScore()
	if err != nil {
		g.logger.Warn("read high score", "err", err)
		return
	}
	g.highScore = score
	if g.readout != nil {
		g.readout.SetHighScore(score)
	}
}

// SetReadout attaches the HUD and pushes the current values.
func (g *Game) SetReadout(r Readout) {
	g.readout = r
	if r == nil {
		return
	}
	r.SetHighScore(g.highScore)
	r.SetPlayerVisible(core.Player2, g.world != nil && g.world.Player(core.Player2) != nil)
	clear(g.shown)
	g.syncReadout()
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flip Frenzy"
}

// Reset loads config and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadFlip(configPath)
		if err != nil {
			g.logger.Warn("load config, using defaults", "err", err)
			cfg = config.DefaultFlipConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlipPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.world = NewWorld(g.cfg, runtime.Seed)
	g.phase = PhaseMenu
	g.matches = 0
	g.transition = 0
	g.prev = core.NewMultiInputFrame()
	clear(g.shown)
	if g.readout != nil {
		g.readout.SetPlayerVisible(core.Player2, false)
	}
}

// Config returns the active config.
func (g *Game) Config() config.FlipConfig {
	return g.cfg
}

// World exposes the simulation state for frontends and tests.
func (g *Game) World() *World {
	return g.world
}

// Phase returns the current game-flow phase.
func (g *Game) Phase() string {
	return g.phase
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// SelectedPlayers returns the player count chosen in the menu.
func (g *Game) SelectedPlayers() int {
	return g.numPlayers
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhasePaused:
		if g.pressed(in, core.ActionPause) {
			g.setPhase(PhasePlaying)
		}
	case PhaseTransition:
		g.transition -= core.TickMS
		if g.transition <= 0 {
			g.transition = 0
			g.world.SetupLevel(g.world.Level)
			g.logger.Debug("level setup", "level", g.world.Level, "enemies", len(g.world.Enemies))
			g.setPhase(PhasePlaying)
		}
	case PhaseGameOver:
		if g.pressed(in, core.ActionConfirm) {
			g.setPhase(PhaseMenu)
			if g.readout != nil {
				g.readout.SetPlayerVisible(core.Player2, false)
			}
		}
	}

	g.world.Particles.Advance()
	g.prev = in.Clone()
	g.syncReadout()

	return core.StepResult{State: g.State(), Events: g.world.drainEvents()}
}

// pressed reports a down-edge of a for any player.
func (g *Game) pressed(in core.MultiInputFrame, a core.Action) bool {
	return in.Any(a) && !g.prev.Any(a)
}

func (g *Game) setPhase(phase string) {
	if g.phase == phase {
		return
	}
	g.logger.Debug("phase", "from", g.phase, "to", phase)
	g.phase = phase
}

func (g *Game) stepMenu(in core.MultiInputFrame) {
	switch {
	case in.Any(core.ActionUp), in.Any(core.ActionLeft):
		g.numPlayers = 1
	case in.Any(core.ActionDown), in.Any(core.ActionRight):
		g.numPlayers = 2
	}
	if g.pressed(in, core.ActionConfirm) {
		g.startMatch()
	}
}

// startMatch builds a fresh world so every match starts from clean rosters.
func (g *Game) startMatch() {
	g.world = NewWorld(g.cfg, g.runtime.Seed+int64(g.matches))
	g.matches++
	g.world.Start(g.numPlayers)
	clear(g.shown)
	if g.readout != nil {
		g.readout.SetPlayerVisible(core.Player1, true)
		g.readout.SetPlayerVisible(core.Player2, g.numPlayers == 2)
	}
	g.logger.Info("match start", "players", g.numPlayers, "seed", g.runtime.Seed)
	g.setPhase(PhasePlaying)
}

func (g *Game) stepPlaying(in core.MultiInputFrame) {
	if g.pressed(in, core.ActionPause) {
		g.setPhase(PhasePaused)
		return
	}

	g.world.Step(in)

	// Game over wins when the last enemy and the last player fall together.
	switch {
	case g.world.AlivePlayers() == 0:
		g.world.emit(core.Event{Kind: core.EventGameOver, Points: g.world.Score()})
		g.logger.Info("game over", "score", g.world.Score(), "level", g.world.Level)
		g.setPhase(PhaseGameOver)
	case len(g.world.Enemies) == 0:
		g.world.emit(core.Event{Kind: core.EventLevelClear, Points: g.world.Level})
		g.world.Level++
		g.transition = g.cfg.Levels.TransitionMS
		g.setPhase(PhaseTransition)
	}
}

// syncReadout pushes changed scores and lives, and raises the high score.
func (g *Game) syncReadout() {
	if g.world == nil {
		return
	}
	for _, p := range g.world.Players {
		if p.Score > g.highScore {
			g.highScore = p.Score
			if g.readout != nil {
				g.readout.SetHighScore(p.Score)
			}
			if g.store != nil {
				if err := g.store.WriteHighScore(p.Score); err != nil {
					g.logger.Warn("write high score", "err", err)
				}
			}
		}

		cur := published{score: p.Score, lives: p.Lives}
		last, ok := g.shown[p.ID]
		if ok && last == cur {
			continue
		}
		g.shown[p.ID] = cur
		if g.readout == nil {
			continue
		}
		if !ok || last.score != cur.score {
			g.readout.SetPlayerScore(p.ID, cur.score)
		}
		if !ok || last.lives != cur.lives {
			g.readout.SetPlayerLives(p.ID, cur.lives)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Phase: g.phase}
	}
	return core.GameState{
		Phase:    g.phase,
		Score:    g.world.Score(),
		Level:    g.world.Level,
		Players:  len(g.world.Players),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// PlayerScores returns every player's score of the current match.
func (g *Game) PlayerScores() map[core.PlayerID]int {
	scores := make(map[core.PlayerID]int)
	if g.world == nil {
		return scores
	}
	for _, p := range g.world.Players {
		scores[p.ID] = p.Score
	}
	return scores
}

// Describe builds the draw list for the current tick: the world, then the
// overlay for the current phase.
func (g *Game) Describe() *core.DrawList {
	d := core.NewDrawList(GameWidth, GameHeight)
	if g.world == nil {
		return d
	}

	if g.phase != PhaseMenu {
		g.world.Describe(d)
	} else {
		g.world.Particles.describe(d)
	}

	switch g.phase {
	case PhaseMenu:
		d.AddOverlay("FLIP FRENZY", core.ColorBrightYellow)
		d.AddOverlay("", core.ColorDefault)
		one, two := "  1 PLAYER ", "  2 PLAYERS "
		if g.numPlayers == 1 {
			one = "> 1 PLAYER <"
		} else {
			two = "> 2 PLAYERS <"
		}
		d.AddOverlay(one, core.ColorBrightWhite)
		d.AddOverlay(two, core.ColorBrightWhite)
		d.AddOverlay("", core.ColorDefault)
		d.AddOverlay(fmt.Sprintf("High score: %d", g.highScore), core.ColorBrightCyan)
		d.AddOverlay("Enter to start", core.ColorGray)
	case PhasePaused:
		d.AddOverlay("PAUSED", core.ColorBrightYellow)
		d.AddOverlay("P to resume", core.ColorGray)
	case PhaseTransition:
		d.AddOverlay(fmt.Sprintf("LEVEL %d", g.world.Level), core.ColorBrightGreen)
		d.AddOverlay("Get ready!", core.ColorBrightWhite)
	case PhaseGameOver:
		d.AddOverlay("GAME OVER", core.ColorBrightRed)
		for _, p := range g.world.Players {
			d.AddOverlay(fmt.Sprintf("%s  %d", p.ID, p.Score), core.ColorBrightWhite)
		}
		d.AddOverlay(fmt.Sprintf("Level %d", g.world.Level), core.ColorBrightCyan)
		d.AddOverlay("Enter for menu", core.ColorGray)
	}
	return d
}

// Render draws the current frame onto the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	g.Describe().Rasterize(screen)
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
