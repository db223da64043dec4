package flipfrenzy

import (
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// Step advances the world one playing tick: motion first, then the
// collision pass. Particles are advanced separately by the caller because
// they run in every game phase.
func (w *World) Step(in core.MultiInputFrame) {
	w.Ticks++

	for _, p := range w.Players {
		if p.advance(in.Player(p.ID), w.cfg) {
			w.emit(core.Event{Kind: core.EventJump, Player: p.ID, X: p.X, Y: p.Y})
		}
	}
	for _, e := range w.Enemies {
		if !e.Removed {
			e.advance(w)
		}
	}
	for _, p := range w.Platforms {
		p.advance()
	}
	w.Block.advance()
	w.compact()

	w.collide()
	w.compact()
}

// collide resolves contacts in a fixed order: enemies onto platforms, then
// each player against block, platforms and enemies, then enemy pairs.
func (w *World) collide() {
	w.settleEnemies()
	for _, p := range w.Players {
		if !p.Dead {
			w.collidePlayer(p)
		}
	}
	w.separateEnemies()
}

// settleEnemies lands enemies on platforms. It runs before the player pass
// so a head-butt sees where enemies rest this tick.
func (w *World) settleEnemies() {
	band := w.cfg.Physics.LandingBand
	for _, e := range w.Enemies {
		if e.Removed || e.Kind == KindIceBomber {
			continue
		}
		for i, plat := range w.Platforms {
			if core.LandsOn(e.Box(), plat.Box(), e.VY, band) {
				e.Y = plat.Y - e.H
				e.VY = 0
				e.X += plat.DX
				e.OnGround = true
				e.Support = i
				break
			}
		}
	}
}

func (w *World) collidePlayer(p *Player) {
	band := w.cfg.Physics.LandingBand

	// Block top. Flags only ever latch on during the pass.
	if w.Block.Active() && core.LandsOn(p.Box(), w.Block.Box(), p.VY, band) {
		p.Y = w.Block.Box().Y - p.H
		p.VY = 0
		p.OnGround = true
	}

	for i, plat := range w.Platforms {
		if core.LandsOn(p.Box(), plat.Box(), p.VY, band) {
			p.Y = plat.Y - p.H
			p.VY = 0
			p.X += plat.DX
			p.OnGround = true
			if plat.Frozen {
				p.OnFrozenPlatform = true
			}
			continue
		}
		if core.HeadButts(p.Box(), plat.Box(), p.VY, band) {
			p.Y = plat.Y + plat.H
			p.VY = 0
			w.bump(p, i)
		}
	}

	// Block underside: solid while it has uses, a trigger only off cooldown.
	if w.Block.Active() && core.HeadButts(p.Box(), w.Block.Box(), p.VY, band) {
		p.Y = w.Block.Bottom
		p.VY = 0
		if w.Block.Trigger() {
			w.explode(p)
		}
	}

	for _, e := range w.Enemies {
		if e.Removed || !p.Box().Overlaps(e.Box()) {
			continue
		}
		if e.Flipped {
			w.kill(p, e)
			continue
		}
		if p.hurt(w.cfg.Player.InvulnerableMS) {
			w.emit(core.Event{Kind: core.EventDeath, Player: p.ID, X: p.X, Y: p.Y})
			w.Particles.Burst(p.X+p.W/2, p.Y+p.H/2, w.cfg.Effects.KillParticles, core.ColorBrightRed, 0)
			break
		}
	}
}

// bump flips unflipped enemies resting on platform idx near the player.
func (w *World) bump(p *Player, idx int) {
	window := w.cfg.Player.HitWindow
	center := p.X + p.W/2
	for _, e := range w.Enemies {
		if e.Removed || e.Flipped || !e.OnGround || e.Support != idx {
			continue
		}
		if core.AbsF(e.X+e.W/2-center) > window {
			continue
		}
		switch e.trigger(w, false) {
		case flipFlipped:
			w.award(p, w.cfg.Scoring.Flip, core.EventFlip, e.X+e.W/2, e.Y)
		case flipDamaged:
			w.emit(core.Event{Kind: core.EventDamage, Player: p.ID, X: e.X + e.W/2, Y: e.Y})
		}
	}
}

// explode flips every unflipped enemy after a block hit. No points are given.
func (w *World) explode(p *Player) {
	box := w.Block.Box()
	x, y := w.Block.X+w.Block.W/2, w.Block.Bottom
	if box.H > 0 {
		y = box.Y + box.H/2
	}
	for _, e := range w.Enemies {
		if !e.Removed && !e.Flipped {
			e.trigger(w, true)
		}
	}
	w.Particles.Burst(x, y, w.cfg.Effects.BlockParticles, core.ColorOrange, '✦')
	w.emit(core.Event{Kind: core.EventExplosion, Player: p.ID, X: x, Y: y})
}

// kill dispatches a flipped enemy the player touched.
func (w *World) kill(p *Player, e *Enemy) {
	e.Removed = true
	x, y := e.X+e.W/2, e.Y+e.H/2
	if e.Kind == KindIceBomber && e.Guard >= 0 && e.Guard < len(w.Platforms) {
		w.Platforms[e.Guard].Guarded = false
	}
	w.Particles.Burst(x, y, w.cfg.Effects.KillParticles, behaviours[e.Kind].color, 0)
	w.award(p, w.cfg.Scoring.Kill, core.EventKill, x, y)
}

// separateEnemies bounces grounded, upright enemies off each other.
func (w *World) separateEnemies() {
	nudge := w.cfg.Enemies.Nudge
	for i, a := range w.Enemies {
		if a.Removed || !a.OnGround || a.Flipped {
			continue
		}
		for _, b := range w.Enemies[i+1:] {
			if b.Removed || !b.OnGround || b.Flipped {
				continue
			}
			if !a.Box().Overlaps(b.Box()) {
				continue
			}
			a.VX, b.VX = b.VX, a.VX
			a.Dir, b.Dir = b.Dir, a.Dir
			if a.X <= b.X {
				a.X -= nudge
				b.X += nudge
			} else {
				a.X += nudge
				b.X -= nudge
			}
		}
	}
}
