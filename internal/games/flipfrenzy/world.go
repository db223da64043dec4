package flipfrenzy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// World dimensions in pixels.
const (
	GameWidth   = 800.0
	GameHeight  = 600.0
	FloorHeight = 40.0
)

// World owns every roster of a match. Only the simulation step writes to it.
type World struct {
	cfg        config.FlipConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	Players   []*Player
	Enemies   []*Enemy
	Platforms []*Platform
	Block     *ExplosiveBlock
	Particles *Particles

	Level int
	Ticks int

	events []core.Event
}

// NewWorld creates an empty world. Call Start to add players and a level.
func NewWorld(cfg config.FlipConfig, seed int64) *World {
	return &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		Block:      NewExplosiveBlock(cfg.Block),
		Particles:  NewParticles(seed+1, cfg.Effects.ParticleDecay),
	}
}

// Start begins a fresh match with n players on level 1.
func (w *World) Start(n int) {
	if n < 1 {
		n = 1
	}
	if n > 2 {
		n = 2
	}
	spawns := []float64{100, GameWidth - 100 - w.cfg.Player.Width}

	w.Players = w.Players[:0]
	for i := range n {
		w.Players = append(w.Players, newPlayer(core.PlayerID(i+1), spawns[i], w.cfg))
	}
	w.Ticks = 0
	w.SetupLevel(1)
}

// Player returns the player with the given ID, or nil when absent.
func (w *World) Player(id core.PlayerID) *Player {
	for _, p := range w.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AlivePlayers counts players still in the match.
func (w *World) AlivePlayers() int {
	n := 0
	for _, p := range w.Players {
		if !p.Dead {
			n++
		}
	}
	return n
}

// Score is the combined score of all players.
func (w *World) Score() int {
	total := 0
	for _, p := range w.Players {
		total += p.Score
	}
	return total
}

func (w *World) emit(ev core.Event) {
	w.events = append(w.events, ev)
}

// drainEvents returns and clears the events of the current tick.
func (w *World) drainEvents() []core.Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}

// award adds points to a player and handles the extra-life threshold.
func (w *World) award(p *Player, points int, kind core.EventKind, x, y float64) {
	w.emit(core.Event{Kind: kind, Player: p.ID, X: x, Y: y, Points: points})
	if points <= 0 {
		return
	}
	if w.cfg.Effects.ScorePopups {
		w.Particles.Popup(x, y, fmt.Sprintf("+%d", points), core.ColorBrightYellow)
	}
	if p.addScore(points, w.cfg.Scoring.ExtraLifeEvery) {
		w.emit(core.Event{Kind: core.EventExtraLife, Player: p.ID, X: p.X, Y: p.Y})
		w.Particles.Popup(p.X+p.W/2, p.Y-20, "1UP", core.ColorBrightGreen)
	}
}

// respawnEnemy drops an enemy back in at a random spawn point.
func (w *World) respawnEnemy(e *Enemy) {
	sp := w.cfg.Levels.SpawnPoints[w.rng.Intn(len(w.cfg.Levels.SpawnPoints))]
	e.X = sp.X
	e.Y = sp.Y
	e.VY = 0
	e.Dir = sp.Dir
	if e.Dir == 0 {
		e.Dir = 1
	}
	e.OnGround = false
	e.Support = -1
}

// detonate blows up an ice bomber and freezes its platform.
func (w *World) detonate(e *Enemy) {
	e.Removed = true
	x, y := e.X+e.W/2, e.Y+e.H/2
	if e.Guard >= 0 && e.Guard < len(w.Platforms) {
		p := w.Platforms[e.Guard]
		p.Freeze(w.cfg.Enemies.FreezeMS)
		p.Guarded = false
	}
	w.Particles.Burst(x, y, w.cfg.Effects.BomberParticles, core.ColorIce, '❄')
	w.emit(core.Event{Kind: core.EventFreeze, X: x, Y: y})
}

// compact drops enemies marked Removed, keeping roster order.
func (w *World) compact() {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = live
}

// Describe appends the world's draw instructions, back to front.
func (w *World) Describe(d *core.DrawList) {
	for _, p := range w.Platforms {
		p.describe(d)
	}
	w.Block.describe(d)
	for _, e := range w.Enemies {
		e.describe(d)
	}
	for _, p := range w.Players {
		p.describe(d)
	}
	w.Particles.describe(d)
}
