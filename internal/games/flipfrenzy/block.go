package flipfrenzy

import (
	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// ExplosiveBlock is the POW block. Hitting it from below flips every enemy.
// Its bottom edge stays put while it shrinks with each use.
type ExplosiveBlock struct {
	X, Bottom  float64
	W          float64
	BaseH      float64
	H          float64
	UsesLeft   int
	MaxUses    int
	Cooldown   float64 // ms until it can trigger again
	CooldownMS float64
}

// NewExplosiveBlock creates a block at full height and uses.
func NewExplosiveBlock(cfg config.FlipBlock) *ExplosiveBlock {
	b := &ExplosiveBlock{
		X:          cfg.X,
		Bottom:     cfg.Bottom,
		W:          cfg.Width,
		BaseH:      cfg.Height,
		MaxUses:    cfg.Uses,
		CooldownMS: cfg.CooldownMS,
	}
	b.Reset()
	return b
}

// Reset restores full height and uses.
func (b *ExplosiveBlock) Reset() {
	b.UsesLeft = b.MaxUses
	b.H = b.BaseH
	b.Cooldown = 0
}

// Box returns the current bounds.
func (b *ExplosiveBlock) Box() core.Box {
	return core.NewBox(b.X, b.Bottom-b.H, b.W, b.H)
}

// Active reports whether the block still exists as a surface and trigger.
func (b *ExplosiveBlock) Active() bool {
	return b.UsesLeft > 0
}

// Ready reports whether a hit from below would trigger it.
func (b *ExplosiveBlock) Ready() bool {
	return b.UsesLeft > 0 && b.Cooldown <= 0
}

// Trigger consumes one use. It reports false when the block is not ready.
func (b *ExplosiveBlock) Trigger() bool {
	if !b.Ready() {
		return false
	}
	b.UsesLeft--
	// Derived from the use count so repeated shrinking never drifts.
	b.H = b.BaseH * float64(b.UsesLeft) / float64(b.MaxUses)
	b.Cooldown = b.CooldownMS
	return true
}

func (b *ExplosiveBlock) advance() {
	if b.Cooldown > 0 {
		b.Cooldown -= core.TickMS
		if b.Cooldown < 0 {
			b.Cooldown = 0
		}
	}
}

func (b *ExplosiveBlock) describe(d *core.DrawList) {
	if !b.Active() {
		return
	}
	alpha := 1.0
	if b.Cooldown > 0 {
		alpha = 0.4
	}
	box := b.Box()
	d.Add(core.DrawCmd{Kind: core.DrawFill, Box: box, Glyph: '▓', Color: core.ColorOrange, Alpha: alpha})
	d.Text(core.NewBox(box.X, box.Y+box.H/2-5, box.W, 10), "POW", core.ColorBrightWhite, alpha)
}
