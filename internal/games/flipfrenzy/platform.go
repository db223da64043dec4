package flipfrenzy

import (
	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// Platform is a surface players and enemies stand on.
// A platform with VX != 0 patrols between StartX and StartX+Range.
type Platform struct {
	X, Y, W, H  float64
	IsFloor     bool
	Frozen      bool
	FrozenTimer float64 // ms left frozen
	VX          float64
	StartX      float64
	Range       float64
	Guarded     bool    // claimed by an ice bomber
	DX          float64 // horizontal movement applied this tick
}

func newPlatform(spec config.PlatformSpec) *Platform {
	return &Platform{
		X:      spec.X,
		Y:      spec.Y,
		W:      spec.W,
		H:      spec.H,
		VX:     spec.VX,
		StartX: spec.X,
		Range:  spec.Range,
	}
}

func newFloor() *Platform {
	return &Platform{X: 0, Y: GameHeight - FloorHeight, W: GameWidth, H: FloorHeight, IsFloor: true}
}

// Box returns the platform bounds.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Moving reports whether the platform patrols.
func (p *Platform) Moving() bool {
	return p.VX != 0
}

// Freeze makes the platform icy for ms milliseconds. A longer remaining
// freeze is kept.
func (p *Platform) Freeze(ms float64) {
	p.Frozen = true
	if ms > p.FrozenTimer {
		p.FrozenTimer = ms
	}
}

func (p *Platform) advance() {
	p.DX = 0
	if p.Moving() {
		prev := p.X
		p.X += p.VX
		if p.X < p.StartX {
			p.X = p.StartX
			p.VX = -p.VX
		} else if p.X > p.StartX+p.Range {
			p.X = p.StartX + p.Range
			p.VX = -p.VX
		}
		p.DX = p.X - prev
	}

	if p.Frozen {
		p.FrozenTimer -= core.TickMS
		if p.FrozenTimer <= 0 {
			p.Frozen = false
			p.FrozenTimer = 0
		}
	}
}

func (p *Platform) describe(d *core.DrawList) {
	switch {
	case p.Frozen:
		d.Fill(p.Box(), '░', core.ColorIce)
	case p.IsFloor:
		d.Fill(p.Box(), '▀', core.ColorBrown)
	case p.Moving():
		d.Fill(p.Box(), '▀', core.ColorCyan)
	default:
		d.Fill(p.Box(), '▀', core.ColorGreen)
	}
}
