package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		stage    int
		expected float64
	}{
		{1, 0.2},
		{6, 0.2 + 0.5*0.8},
		{11, 1.0},
		{50, 1.0},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.stage, 0, 0); !almostEqual(got, tc.expected) {
			t.Errorf("Level(stage=%d) = %v, expected %v", tc.stage, got, tc.expected)
		}
	}
}

func TestDifficultyScoreAndTime(t *testing.T) {
	score := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	if got := score.Level(9, 500, 0); !almostEqual(got, 0.5) {
		t.Errorf("score Level = %v, expected 0.5", got)
	}

	ticks := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := ticks.Level(9, 0, 150); !almostEqual(got, 0.25) {
		t.Errorf("time Level = %v, expected 0.25", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 10},
	})
	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.Level(10, 0, 0); got != 0.4 {
		t.Errorf("Level() = %v, expected initial 0.4", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})
	if got := dm.Speed(2, 1, 0, 0); got != 2 {
		t.Errorf("Speed at stage 1 = %v, expected 2", got)
	}
	if got := dm.Speed(2, 5, 0, 0); got != 3 {
		t.Errorf("Speed at max stage = %v, expected 3", got)
	}
}
