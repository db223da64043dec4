// Package config provides YAML-based game configuration loading and
// difficulty management for Flip Frenzy.
package config

// FlipConfig contains all tuning for the Flip Frenzy simulation.
type FlipConfig struct {
	Physics    FlipPhysics      `yaml:"physics"`
	Player     FlipPlayer       `yaml:"player"`
	Enemies    FlipEnemies      `yaml:"enemies"`
	Block      FlipBlock        `yaml:"block"`
	Scoring    FlipScoring      `yaml:"scoring"`
	Effects    FlipEffects      `yaml:"effects"`
	Levels     FlipLevels       `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlipPhysics defines world physics. Velocities are pixels per tick.
type FlipPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	LandingBand  float64 `yaml:"landing_band"` // tolerance for landing and head-butt checks
	IceFriction  float64 `yaml:"ice_friction"`
	IceAccel     float64 `yaml:"ice_accel"`
}

// FlipPlayer defines player parameters.
type FlipPlayer struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	Lives          int     `yaml:"lives"`
	InvulnerableMS float64 `yaml:"invulnerable_ms"`
	HitWindow      float64 `yaml:"hit_window"` // half-width of the head-butt flip zone
}

// FlipEnemies defines parameters shared by all enemy kinds plus per-kind extras.
type FlipEnemies struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BasicSpeed     float64 `yaml:"basic_speed"`
	FastSpeed      float64 `yaml:"fast_speed"`
	JumpingSpeed   float64 `yaml:"jumping_speed"`
	ToughSpeed     float64 `yaml:"tough_speed"`
	BomberSpeed    float64 `yaml:"bomber_speed"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	JumpCooldownMS float64 `yaml:"jump_cooldown_ms"`
	FlipMS         float64 `yaml:"flip_ms"`
	RecoverHop     float64 `yaml:"recover_hop"`
	HitAnimMS      float64 `yaml:"hit_anim_ms"`
	ToughHits      int     `yaml:"tough_hits"`
	FuseMS         float64 `yaml:"fuse_ms"`
	FlippedFuseMS  float64 `yaml:"flipped_fuse_ms"`
	FreezeMS       float64 `yaml:"freeze_ms"`
	Nudge          float64 `yaml:"nudge"`
}

// FlipBlock defines the explosive block. Y is the fixed bottom edge.
type FlipBlock struct {
	X          float64 `yaml:"x"`
	Bottom     float64 `yaml:"bottom"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Uses       int     `yaml:"uses"`
	CooldownMS float64 `yaml:"cooldown_ms"`
}

// FlipScoring defines point awards.
type FlipScoring struct {
	Flip           int `yaml:"flip"`
	Kill           int `yaml:"kill"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
}

// FlipEffects defines particle bursts.
type FlipEffects struct {
	KillParticles   int     `yaml:"kill_particles"`
	BomberParticles int     `yaml:"bomber_particles"`
	BlockParticles  int     `yaml:"block_particles"`
	ParticleDecay   float64 `yaml:"particle_decay"` // life lost per tick
	ScorePopups     bool    `yaml:"score_popups"`
}

// FlipLevels defines level layouts and roster generation.
type FlipLevels struct {
	TransitionMS       float64          `yaml:"transition_ms"`
	EnemyBase          int              `yaml:"enemy_base"`
	EnemyPerLevel      int              `yaml:"enemy_per_level"`
	MaxDifficultyLevel int              `yaml:"max_difficulty_level"`
	LevelsPerTemplate  int              `yaml:"levels_per_template"`
	SpawnStagger       float64          `yaml:"spawn_stagger"`
	SpawnPoints        []SpawnPoint     `yaml:"spawn_points"`
	Bands              []TypeBand       `yaml:"bands"`
	Templates          []LayoutTemplate `yaml:"templates"`
}

// SpawnPoint is where enemies enter the world. Dir points inward.
type SpawnPoint struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Dir int     `yaml:"dir"`
}

// TypeBand gives an enemy kind a share of the roster from MinLevel on.
type TypeBand struct {
	Kind     string  `yaml:"kind"`
	MinLevel int     `yaml:"min_level"`
	Chance   float64 `yaml:"chance"`
}

// LayoutTemplate is a named set of platforms; the floor is always added.
type LayoutTemplate struct {
	Name      string         `yaml:"name"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

// PlatformSpec describes one platform. VX and Range make it patrol.
type PlatformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	VX    float64 `yaml:"vx,omitempty"`
	Range float64 `yaml:"range,omitempty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
