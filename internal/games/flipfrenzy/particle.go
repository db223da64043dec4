package flipfrenzy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// Particle is a short-lived cosmetic entity.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed at 0
	Color  core.Color
	Glyph  rune    // 0 draws a plain spark
	Size   float64 // shrinks each tick for glyph particles
	Text   string  // score popups float without gravity
}

const (
	particleGravity = 0.15
	glyphShrink     = 0.97
	popupRise       = -1.2
)

// Particles owns the effect list. It draws from its own RNG so effects
// never change the gameplay random sequence.
type Particles struct {
	list  []Particle
	rng   *rand.Rand
	decay float64
}

// NewParticles creates an empty particle system.
func NewParticles(seed int64, decay float64) *Particles {
	if decay <= 0 {
		decay = 0.02
	}
	return &Particles{rng: rand.New(rand.NewSource(seed)), decay: decay}
}

// Len returns the number of live particles.
func (s *Particles) Len() int {
	return len(s.list)
}

// All returns the live particles. The slice must not be modified.
func (s *Particles) All() []Particle {
	return s.list
}

// Clear drops every particle.
func (s *Particles) Clear() {
	s.list = s.list[:0]
}

// Burst spawns n particles flying outward from (x, y).
func (s *Particles) Burst(x, y float64, n int, c core.Color, glyph rune) {
	for range n {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 1 + s.rng.Float64()*3
		p := Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 1,
			Life:  1,
			Color: c,
			Glyph: glyph,
		}
		if glyph != 0 {
			p.Size = 12 + s.rng.Float64()*8
		}
		s.list = append(s.list, p)
	}
}

// Popup spawns a floating text label.
func (s *Particles) Popup(x, y float64, text string, c core.Color) {
	s.list = append(s.list, Particle{X: x, Y: y, VY: popupRise, Life: 1, Color: c, Text: text})
}

// Advance moves every particle one tick and prunes expired ones in place.
func (s *Particles) Advance() {
	live := s.list[:0]
	for _, p := range s.list {
		p.X += p.VX
		p.Y += p.VY
		if p.Text == "" {
			p.VY += particleGravity
		}
		if p.Glyph != 0 {
			p.Size *= glyphShrink
		}
		p.Life -= s.decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.list = live
}

func (s *Particles) describe(d *core.DrawList) {
	for _, p := range s.list {
		switch {
		case p.Text != "":
			d.Text(core.NewBox(p.X-20, p.Y, 40, 10), p.Text, p.Color, p.Life)
		case p.Glyph != 0:
			if p.Size < 1 {
				continue
			}
			d.Glyph(core.NewBox(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size), p.Glyph, p.Color, 0, p.Life)
		default:
			d.Glyph(core.NewBox(p.X-1, p.Y-1, 2, 2), '·', p.Color, 0, p.Life)
		}
	}
}
