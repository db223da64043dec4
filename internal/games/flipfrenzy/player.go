package flipfrenzy

import (
	"math"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// Player is one local player.
type Player struct {
	ID               core.PlayerID
	X, Y             float64
	VX, VY           float64
	W, H             float64
	OnGround         bool
	OnFrozenPlatform bool
	Dead             bool
	Score            int
	Lives            int
	NextExtraLife    int     // score that grants the next life
	Invulnerable     float64 // ms of post-respawn grace
	SpawnX           float64
	Facing           int
}

func newPlayer(id core.PlayerID, spawnX float64, cfg config.FlipConfig) *Player {
	p := &Player{
		ID:            id,
		W:             cfg.Player.Width,
		H:             cfg.Player.Height,
		Lives:         cfg.Player.Lives,
		NextExtraLife: cfg.Scoring.ExtraLifeEvery,
		SpawnX:        spawnX,
		Facing:        1,
	}
	p.respawn()
	return p
}

// Box returns the player bounds.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// respawn puts the player back on the floor at its spawn column.
func (p *Player) respawn() {
	p.X = p.SpawnX
	p.Y = GameHeight - FloorHeight - p.H
	p.VX = 0
	p.VY = 0
	p.OnGround = true
	p.OnFrozenPlatform = false
}

// advance applies input and physics. It reports whether the player jumped.
func (p *Player) advance(in core.InputFrame, cfg config.FlipConfig) bool {
	if p.Dead {
		return false
	}
	if p.Invulnerable > 0 {
		p.Invulnerable = math.Max(0, p.Invulnerable-core.TickMS)
	}

	grounded := p.OnGround
	icy := p.OnFrozenPlatform
	p.OnGround = false
	p.OnFrozenPlatform = false

	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		p.Facing = int(dir)
	}

	speed := cfg.Player.Speed
	if icy {
		p.VX = p.VX*cfg.Physics.IceFriction + dir*cfg.Physics.IceAccel
		p.VX = core.ClampF(p.VX, -speed, speed)
	} else {
		p.VX = dir * speed
	}

	jumped := false
	if grounded && in.Has(core.ActionJump) {
		p.VY = cfg.Player.JumpVelocity
		jumped = true
	}

	p.VY = math.Min(p.VY+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
	p.X += p.VX
	p.Y += p.VY

	// Players wrap individually once their centre crosses an edge.
	if cx := p.X + p.W/2; cx < 0 {
		p.X += GameWidth
	} else if cx > GameWidth {
		p.X -= GameWidth
	}
	if p.Y > GameHeight {
		p.respawn()
	}
	return jumped
}

// addScore awards points and reports whether an extra life was granted.
// At most one life is granted per award, even when the award spans
// several thresholds.
func (p *Player) addScore(points, every int) bool {
	if points <= 0 || p.Dead {
		return false
	}
	p.Score += points
	if every > 0 && p.Score >= p.NextExtraLife {
		p.Lives++
		p.NextExtraLife += every
		return true
	}
	return false
}

// hurt costs a life. It reports whether the hit landed.
func (p *Player) hurt(invulnerableMS float64) bool {
	if p.Dead || p.Invulnerable > 0 {
		return false
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Dead = true
		return true
	}
	p.respawn()
	p.Invulnerable = invulnerableMS
	return true
}

func (p *Player) describe(d *core.DrawList) {
	if p.Dead {
		return
	}
	alpha := 1.0
	if p.Invulnerable > 0 && int(p.Invulnerable/100)%2 == 0 {
		alpha = 0.3
	}
	color := core.ColorBrightGreen
	if p.ID == core.Player2 {
		color = core.ColorBrightCyan
	}
	d.Add(core.DrawCmd{Kind: core.DrawFill, Box: p.Box(), Glyph: '█', Color: color, Alpha: alpha})

	eye := p.X + p.W*0.7
	if p.Facing < 0 {
		eye = p.X + p.W*0.3
	}
	d.Glyph(core.NewBox(eye-2, p.Y+6, 4, 4), '•', core.ColorBrightWhite, 0, alpha)
}
