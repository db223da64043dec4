package flipfrenzy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// EnemyKind tags an enemy's variant.
type EnemyKind int

const (
	KindBasic EnemyKind = iota
	KindFast
	KindJumping
	KindIceBomber
	KindTough
	kindCount
)

var kindNames = [...]string{
	KindBasic:     "basic",
	KindFast:      "fast",
	KindJumping:   "jumping",
	KindIceBomber: "ice_bomber",
	KindTough:     "tough",
}

func (k EnemyKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a config name to an EnemyKind.
func ParseKind(name string) (EnemyKind, error) {
	for k, n := range kindNames {
		if n == name {
			return EnemyKind(k), nil
		}
	}
	return KindBasic, fmt.Errorf("flipfrenzy: unknown enemy kind %q", name)
}

// flipResult says what a flip trigger did to an enemy.
type flipResult int

const (
	flipIgnored flipResult = iota // already flipped
	flipDamaged                   // tough enemy absorbed the hit
	flipFlipped
)

// behaviour is the per-variant hook table. Variants override only what
// differs from a plain walker.
type behaviour struct {
	move  func(e *Enemy, w *World, grounded bool)
	flip  func(e *Enemy, w *World, full bool) flipResult
	glyph rune
	color core.Color
}

var behaviours [kindCount]behaviour

// The table is filled in init because the hooks call back into World,
// which would otherwise form an initialization cycle.
func init() {
	behaviours = [kindCount]behaviour{
		KindBasic:     {move: walk, flip: flipOnce, glyph: 'm', color: core.ColorRed},
		KindFast:      {move: walk, flip: flipOnce, glyph: 'M', color: core.ColorMagenta},
		KindJumping:   {move: hop, flip: flipOnce, glyph: 'n', color: core.ColorYellow},
		KindIceBomber: {move: patrol, flip: flipFuse, glyph: '▲', color: core.ColorIce},
		KindTough:     {move: walk, flip: flipStaged, glyph: 'A', color: core.ColorOrange},
	}
}

// Enemy is a tagged-variant enemy. Variant-only fields are zero for other kinds.
type Enemy struct {
	Kind         EnemyKind
	X, Y         float64
	VX, VY       float64
	W, H         float64
	Dir          int
	Speed        float64
	Flipped      bool
	FlipTimer    float64 // ms until it recovers
	OnGround     bool
	HitAnimTimer float64
	Support      int  // platform index it rests on, -1 when airborne
	Removed      bool // dropped at the next compaction

	JumpCooldown float64 // jumping
	Guard        int     // ice bomber: guarded platform index
	Fuse         float64 // ice bomber: ms until detonation
	HitsLeft     int     // tough: triggers left before a real flip
	Damaged      bool    // tough: absorbed a hit
}

// Box returns the enemy bounds.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

func (e *Enemy) advance(w *World) {
	if e.HitAnimTimer > 0 {
		e.HitAnimTimer = math.Max(0, e.HitAnimTimer-core.TickMS)
	}

	if e.Flipped {
		e.FlipTimer -= core.TickMS
		if e.FlipTimer <= 0 {
			e.Flipped = false
			e.FlipTimer = 0
			e.VY = w.cfg.Enemies.RecoverHop
		}
	}

	grounded := e.OnGround
	e.OnGround = false
	e.Support = -1
	behaviours[e.Kind].move(e, w, grounded)
}

// trigger applies a flip. full skips the tough enemy's staging.
func (e *Enemy) trigger(w *World, full bool) flipResult {
	if e.Removed {
		return flipIgnored
	}
	return behaviours[e.Kind].flip(e, w, full)
}

// walk is the default movement: constant speed, gravity, respawn at the edges.
func walk(e *Enemy, w *World, _ bool) {
	if e.Flipped {
		e.VX = 0
	} else {
		e.VX = float64(e.Dir) * e.Speed
	}

	e.VY = math.Min(e.VY+w.cfg.Physics.Gravity, w.cfg.Physics.MaxFallSpeed)
	e.X += e.VX
	e.Y += e.VY

	cx := e.X + e.W/2
	if cx < 0 || cx > GameWidth || e.Y > GameHeight {
		w.respawnEnemy(e)
	}
}

// hop walks and jumps from the ground whenever the cooldown allows.
func hop(e *Enemy, w *World, grounded bool) {
	if e.JumpCooldown > 0 {
		e.JumpCooldown -= core.TickMS
	}
	if grounded && !e.Flipped && e.JumpCooldown <= 0 {
		e.VY = w.cfg.Enemies.JumpVelocity
		e.JumpCooldown = w.cfg.Enemies.JumpCooldownMS
	}
	walk(e, w, grounded)
}

// patrol keeps an ice bomber pacing on top of its guarded platform until
// the fuse runs out.
func patrol(e *Enemy, w *World, _ bool) {
	e.Fuse -= core.TickMS
	if e.Fuse <= 0 {
		w.detonate(e)
		return
	}
	if e.Guard < 0 || e.Guard >= len(w.Platforms) {
		walk(e, w, false)
		return
	}

	p := w.Platforms[e.Guard]
	if e.Flipped {
		e.VX = 0
	} else {
		e.VX = float64(e.Dir) * e.Speed
		e.X += e.VX
		if e.X < p.X {
			e.X = p.X
			e.Dir = 1
		} else if e.X+e.W > p.X+p.W {
			e.X = p.X + p.W - e.W
			e.Dir = -1
		}
	}
	e.Y = p.Y - e.H
	e.VY = 0
	e.OnGround = true
	e.Support = e.Guard
}

func flipOnce(e *Enemy, w *World, _ bool) flipResult {
	if e.Flipped {
		return flipIgnored
	}
	e.Flipped = true
	e.FlipTimer = w.cfg.Enemies.FlipMS
	e.VX = 0
	return flipFlipped
}

// flipFuse flips a bomber and brings its detonation forward.
func flipFuse(e *Enemy, w *World, full bool) flipResult {
	res := flipOnce(e, w, full)
	if res == flipFlipped && e.Fuse > w.cfg.Enemies.FlippedFuseMS {
		e.Fuse = w.cfg.Enemies.FlippedFuseMS
	}
	return res
}

// flipStaged needs HitsLeft triggers; earlier ones only damage.
func flipStaged(e *Enemy, w *World, full bool) flipResult {
	if e.Flipped {
		return flipIgnored
	}
	if !full && e.HitsLeft > 1 {
		e.HitsLeft--
		e.Damaged = true
		e.HitAnimTimer = w.cfg.Enemies.HitAnimMS
		return flipDamaged
	}
	if e.HitsLeft > 1 {
		e.HitsLeft = 1
	}
	return flipOnce(e, w, full)
}

func (e *Enemy) describe(d *core.DrawList) {
	b := behaviours[e.Kind]
	color := b.color
	if e.Damaged {
		color = core.ColorBrightYellow
	}

	alpha := 1.0
	if e.HitAnimTimer > 0 && int(e.HitAnimTimer/50)%2 == 0 {
		alpha = 0.3
	}
	if e.Flipped && e.FlipTimer < 1000 && int(e.FlipTimer/100)%2 == 0 {
		alpha = 0.4
	}

	rotation := 0.0
	if e.Flipped {
		rotation = math.Pi
	}
	d.Add(core.DrawCmd{Kind: core.DrawFill, Box: e.Box(), Glyph: b.glyph, Color: color, Rotation: rotation, Alpha: alpha})

	if e.Kind == KindIceBomber {
		secs := int(math.Ceil(e.Fuse / 1000))
		d.Text(core.NewBox(e.X, e.Y-20, e.W, 10), fmt.Sprintf("%d", secs), core.ColorIce, 1)
	}
}
