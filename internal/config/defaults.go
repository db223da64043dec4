package config

import (
	_ "embed"
)

//go:embed defaults/flipfrenzy.yaml
var defaultFlipYAML []byte

// DefaultFlipConfig returns the built-in Flip Frenzy configuration.
// It mirrors defaults/flipfrenzy.yaml and is used when the embedded file fails to parse.
func DefaultFlipConfig() FlipConfig {
	return FlipConfig{
		Physics: FlipPhysics{
			Gravity:      0.5,
			MaxFallSpeed: 12,
			LandingBand:  10,
			IceFriction:  0.95,
			IceAccel:     0.3,
		},
		Player: FlipPlayer{
			Width:          30,
			Height:         40,
			Speed:          4,
			JumpVelocity:   -12,
			Lives:          3,
			InvulnerableMS: 2000,
			HitWindow:      40,
		},
		Enemies: FlipEnemies{
			Width:          30,
			Height:         30,
			BasicSpeed:     1.5,
			FastSpeed:      3,
			JumpingSpeed:   1.5,
			ToughSpeed:     1,
			BomberSpeed:    1,
			JumpVelocity:   -9,
			JumpCooldownMS: 2000,
			FlipMS:         5000,
			RecoverHop:     -4,
			HitAnimMS:      300,
			ToughHits:      2,
			FuseMS:         8000,
			FlippedFuseMS:  150,
			FreezeMS:       10000,
			Nudge:          4,
		},
		Block: FlipBlock{
			X:          380,
			Bottom:     510,
			Width:      40,
			Height:     30,
			Uses:       3,
			CooldownMS: 500,
		},
		Scoring: FlipScoring{
			Flip:           50,
			Kill:           200,
			ExtraLifeEvery: 2000,
		},
		Effects: FlipEffects{
			KillParticles:   20,
			BomberParticles: 40,
			BlockParticles:  30,
			ParticleDecay:   0.02,
			ScorePopups:     true,
		},
		Levels: FlipLevels{
			TransitionMS:       3000,
			EnemyBase:          3,
			EnemyPerLevel:      1,
			MaxDifficultyLevel: 10,
			LevelsPerTemplate:  4,
			SpawnStagger:       60,
			SpawnPoints: []SpawnPoint{
				{X: 50, Y: 20, Dir: 1},
				{X: 720, Y: 20, Dir: -1},
			},
			Bands: []TypeBand{
				{Kind: "fast", MinLevel: 2, Chance: 0.25},
				{Kind: "jumping", MinLevel: 3, Chance: 0.20},
				{Kind: "ice_bomber", MinLevel: 4, Chance: 0.15},
				{Kind: "tough", MinLevel: 6, Chance: 0.15},
			},
			Templates: []LayoutTemplate{
				{
					Name: "classic",
					Platforms: []PlatformSpec{
						{X: 0, Y: 440, W: 250, H: 20},
						{X: 550, Y: 440, W: 250, H: 20},
						{X: 200, Y: 320, W: 400, H: 20},
						{X: 0, Y: 200, W: 300, H: 20},
						{X: 500, Y: 200, W: 300, H: 20},
					},
				},
				{
					Name: "ladders",
					Platforms: []PlatformSpec{
						{X: 60, Y: 440, W: 200, H: 20},
						{X: 540, Y: 440, W: 200, H: 20},
						{X: 0, Y: 320, W: 180, H: 20},
						{X: 310, Y: 320, W: 180, H: 20},
						{X: 620, Y: 320, W: 180, H: 20},
						{X: 150, Y: 200, W: 500, H: 20},
					},
				},
				{
					Name: "shuttle",
					Platforms: []PlatformSpec{
						{X: 0, Y: 440, W: 220, H: 20},
						{X: 580, Y: 440, W: 220, H: 20},
						{X: 250, Y: 320, W: 140, H: 20, VX: 1, Range: 160},
						{X: 0, Y: 200, W: 260, H: 20},
						{X: 540, Y: 200, W: 260, H: 20},
					},
				},
				{
					Name: "gauntlet",
					Platforms: []PlatformSpec{
						{X: 0, Y: 440, W: 160, H: 20},
						{X: 320, Y: 440, W: 160, H: 20, VX: 1.5, Range: 120},
						{X: 640, Y: 440, W: 160, H: 20},
						{X: 100, Y: 320, W: 220, H: 20},
						{X: 480, Y: 320, W: 220, H: 20},
						{X: 250, Y: 200, W: 300, H: 20},
					},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlipYAML
}
