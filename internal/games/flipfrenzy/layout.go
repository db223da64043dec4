package flipfrenzy

import (
	"github.com/vovakirdan/flip-frenzy/internal/config"
)

// TemplateIndex picks the layout for a level. Templates repeat in a cycle,
// each held for levelsPerTemplate levels.
func TemplateIndex(level, levelsPerTemplate, templates int) int {
	if level < 1 {
		level = 1
	}
	if levelsPerTemplate < 1 {
		levelsPerTemplate = 1
	}
	if templates < 1 {
		return 0
	}
	return ((level - 1) / levelsPerTemplate) % templates
}

// EnemyCount returns the roster size for a level, capped at the max difficulty level.
func EnemyCount(level int, cfg config.FlipLevels) int {
	l := min(level, cfg.MaxDifficultyLevel)
	if l < 1 {
		l = 1
	}
	return cfg.EnemyBase + cfg.EnemyPerLevel*(l-1)
}

// PickKind resolves one uniform draw r in [0, 1) against the cumulative
// bands open at level. Bands below their minimum level are skipped.
func PickKind(r float64, level int, bands []config.TypeBand) EnemyKind {
	acc := 0.0
	for _, b := range bands {
		if level < b.MinLevel {
			continue
		}
		acc += b.Chance
		if r < acc {
			kind, err := ParseKind(b.Kind)
			if err != nil {
				return KindBasic
			}
			return kind
		}
	}
	return KindBasic
}

// SetupLevel replaces the platforms and roster for level. Players keep
// their score and lives; living players return to their spawn.
func (w *World) SetupLevel(level int) {
	w.Level = level
	lv := w.cfg.Levels
	tmpl := lv.Templates[TemplateIndex(level, lv.LevelsPerTemplate, len(lv.Templates))]

	// Floor first so index 0 is always the floor.
	w.Platforms = w.Platforms[:0]
	w.Platforms = append(w.Platforms, newFloor())
	for _, spec := range tmpl.Platforms {
		w.Platforms = append(w.Platforms, newPlatform(spec))
	}

	w.Block.Reset()
	w.Enemies = w.Enemies[:0]
	w.populate(level)

	for _, p := range w.Players {
		if !p.Dead {
			p.respawn()
			p.Invulnerable = 0
		}
	}
}

func (w *World) populate(level int) {
	lv := w.cfg.Levels
	n := EnemyCount(level, lv)
	for i := range n {
		kind := PickKind(w.rng.Float64(), level, lv.Bands)
		guard := -1
		if kind == KindIceBomber {
			if guard = w.claimGuardPlatform(); guard < 0 {
				kind = KindBasic
			}
		}

		e := w.newEnemy(kind, level)
		if guard >= 0 {
			p := w.Platforms[guard]
			e.Guard = guard
			e.X = p.X + (p.W-e.W)/2
			e.Y = p.Y - e.H
			e.Dir = 1
			e.OnGround = true
			e.Support = guard
		} else {
			// Later enemies queue up above the spawn points.
			sp := lv.SpawnPoints[i%len(lv.SpawnPoints)]
			row := float64(i / len(lv.SpawnPoints))
			e.X = sp.X
			e.Y = sp.Y - row*lv.SpawnStagger
			e.Dir = sp.Dir
			if e.Dir == 0 {
				e.Dir = 1
			}
		}
		w.Enemies = append(w.Enemies, e)
	}
}

func (w *World) newEnemy(kind EnemyKind, level int) *Enemy {
	ec := w.cfg.Enemies
	base := ec.BasicSpeed
	switch kind {
	case KindFast:
		base = ec.FastSpeed
	case KindJumping:
		base = ec.JumpingSpeed
	case KindIceBomber:
		base = ec.BomberSpeed
	case KindTough:
		base = ec.ToughSpeed
	}

	e := &Enemy{
		Kind:    kind,
		W:       ec.Width,
		H:       ec.Height,
		Speed:   w.difficulty.Speed(base, level, w.Score(), w.Ticks),
		Support: -1,
		Guard:   -1,
	}
	switch kind {
	case KindJumping:
		e.JumpCooldown = ec.JumpCooldownMS
	case KindIceBomber:
		e.Fuse = ec.FuseMS
	case KindTough:
		e.HitsLeft = ec.ToughHits
	}
	return e
}

// claimGuardPlatform picks a random stationary, non-floor platform nobody
// guards yet and marks it guarded. Returns -1 when none is eligible.
func (w *World) claimGuardPlatform() int {
	var eligible []int
	for i, p := range w.Platforms {
		if !p.IsFloor && !p.Moving() && !p.Guarded {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return -1
	}
	idx := eligible[w.rng.Intn(len(eligible))]
	w.Platforms[idx].Guarded = true
	return idx
}
