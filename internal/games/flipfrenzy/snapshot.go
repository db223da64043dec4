package flipfrenzy

import "math"

// Snapshot contains the observable match state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	Phase     string
	Level     int
	BlockUses int
	Particles int

	// Each player is 6 values: X, Y, VX, VY, Score, Lives
	PlayerData []float64

	// Each enemy is 6 values: Kind, X, Y, VX, VY, Flipped
	EnemyData []float64

	// Each platform is 3 values: X, Frozen, FrozenTimer
	PlatformData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:      w.Ticks,
		Phase:     g.phase,
		Level:     w.Level,
		BlockUses: w.Block.UsesLeft,
		Particles: w.Particles.Len(),
	}

	snap.PlayerData = make([]float64, 0, len(w.Players)*6)
	for _, p := range w.Players {
		snap.PlayerData = append(snap.PlayerData, p.X, p.Y, p.VX, p.VY, float64(p.Score), float64(p.Lives))
	}

	snap.EnemyData = make([]float64, 0, len(w.Enemies)*6)
	for _, e := range w.Enemies {
		flipped := 0.0
		if e.Flipped {
			flipped = 1
		}
		snap.EnemyData = append(snap.EnemyData, float64(e.Kind), e.X, e.Y, e.VX, e.VY, flipped)
	}

	snap.PlatformData = make([]float64, 0, len(w.Platforms)*3)
	for _, p := range w.Platforms {
		frozen := 0.0
		if p.Frozen {
			frozen = 1
		}
		snap.PlatformData = append(snap.PlatformData, p.X, frozen, p.FrozenTimer)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockUses) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles) //#nosec G115 -- hash computation
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, data := range [][]float64{snap.PlayerData, snap.EnemyData, snap.PlatformData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}
