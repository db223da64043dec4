package flipfrenzy

import (
	"testing"

	"github.com/vovakirdan/flip-frenzy/internal/config"
)

func TestTemplateIndex(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0}, {4, 0}, {5, 1}, {8, 1}, {9, 2}, {13, 3}, {16, 3}, {17, 0}, {0, 0},
	}
	for _, tt := range tests {
		if got := TemplateIndex(tt.level, 4, 4); got != tt.want {
			t.Errorf("TemplateIndex(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestEnemyCount(t *testing.T) {
	lv := config.DefaultFlipConfig().Levels
	tests := []struct {
		level int
		want  int
	}{
		{1, 3}, {2, 4}, {5, 7}, {10, 12}, {11, 12}, {50, 12},
	}
	for _, tt := range tests {
		if got := EnemyCount(tt.level, lv); got != tt.want {
			t.Errorf("EnemyCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPickKind(t *testing.T) {
	bands := config.DefaultFlipConfig().Levels.Bands
	tests := []struct {
		name  string
		r     float64
		level int
		want  EnemyKind
	}{
		{"level 1 is all basic", 0.0, 1, KindBasic},
		{"fast band", 0.1, 2, KindFast},
		{"past fast band", 0.3, 2, KindBasic},
		{"jumping band", 0.3, 3, KindJumping},
		{"bomber band", 0.5, 4, KindIceBomber},
		{"tough locked", 0.7, 5, KindBasic},
		{"tough band", 0.7, 6, KindTough},
		{"remainder", 0.99, 10, KindBasic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickKind(tt.r, tt.level, bands); got != tt.want {
				t.Errorf("PickKind(%v, %d) = %v, want %v", tt.r, tt.level, got, tt.want)
			}
		})
	}
}

func TestSetupLevel(t *testing.T) {
	w := NewWorld(config.DefaultFlipConfig(), 7)
	w.Start(2)

	for level := 1; level <= 12; level++ {
		w.Platforms[1].Freeze(5000)
		w.Block.Trigger()

		w.SetupLevel(level)

		if !w.Platforms[0].IsFloor {
			t.Fatalf("level %d: platform 0 is not the floor", level)
		}
		tmpl := w.cfg.Levels.Templates[TemplateIndex(level, 4, len(w.cfg.Levels.Templates))]
		if len(w.Platforms) != len(tmpl.Platforms)+1 {
			t.Errorf("level %d: %d platforms, want %d", level, len(w.Platforms), len(tmpl.Platforms)+1)
		}
		for i, p := range w.Platforms {
			if p.Frozen {
				t.Errorf("level %d: platform %d frozen at start", level, i)
			}
		}
		if w.Block.UsesLeft != w.Block.MaxUses || w.Block.H != w.Block.BaseH {
			t.Errorf("level %d: block not reset", level)
		}
		if len(w.Enemies) != EnemyCount(level, w.cfg.Levels) {
			t.Errorf("level %d: %d enemies, want %d", level, len(w.Enemies), EnemyCount(level, w.cfg.Levels))
		}
		for _, e := range w.Enemies {
			if e.Kind != KindIceBomber {
				continue
			}
			p := w.Platforms[e.Guard]
			if p.IsFloor || p.Moving() || !p.Guarded {
				t.Errorf("level %d: bomber guards an ineligible platform %d", level, e.Guard)
			}
		}
	}
}

func TestBomberFallsBackToBasic(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	cfg.Levels.Bands = []config.TypeBand{{Kind: "ice_bomber", MinLevel: 1, Chance: 1}}
	cfg.Levels.Templates = []config.LayoutTemplate{{
		Name: "one ledge",
		Platforms: []config.PlatformSpec{
			{X: 100, Y: 300, W: 200, H: 20},
			{X: 400, Y: 400, W: 200, H: 20, VX: 1, Range: 100},
		},
	}}

	w := NewWorld(cfg, 3)
	w.Start(1)

	bombers := 0
	for _, e := range w.Enemies {
		if e.Kind == KindIceBomber {
			bombers++
			if e.Guard != 1 {
				t.Errorf("bomber guards %d, want the stationary ledge", e.Guard)
			}
		}
	}
	if bombers != 1 {
		t.Errorf("%d bombers, want exactly 1", bombers)
	}
	if len(w.Enemies) != EnemyCount(1, cfg.Levels) {
		t.Errorf("%d enemies, want %d", len(w.Enemies), EnemyCount(1, cfg.Levels))
	}
}

func TestSetupLevelKeepsScores(t *testing.T) {
	w := NewWorld(config.DefaultFlipConfig(), 1)
	w.Start(2)
	w.Players[0].Score = 500
	w.Players[1].Dead = true
	w.Players[1].Lives = 0

	w.SetupLevel(2)

	if w.Players[0].Score != 500 {
		t.Errorf("score reset to %d", w.Players[0].Score)
	}
	if !w.Players[1].Dead {
		t.Error("dead player revived by level setup")
	}
	if w.Level != 2 {
		t.Errorf("Level = %d, want 2", w.Level)
	}
}
