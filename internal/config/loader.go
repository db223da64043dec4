package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "flipfrenzy.yaml"

// LoadFlip loads Flip Frenzy configuration.
// Search order: customPath -> ~/.arcade/configs/flipfrenzy.yaml -> ./configs/flipfrenzy.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadFlip(customPath string) (FlipConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlipConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := ParseFlip(data)
		if err != nil {
			return FlipConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlip(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := ParseFlip(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFlip(defaultFlipYAML)
	if err != nil {
		return DefaultFlipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFlip decodes YAML over the defaults and validates the result.
func ParseFlip(data []byte) (FlipConfig, error) {
	cfg := DefaultFlipConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlipConfig{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlipConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c FlipConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c FlipConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Player.Lives < 1 {
		errs = append(errs, errors.New("player.lives must be at least 1"))
	}
	if c.Block.Uses < 0 {
		errs = append(errs, errors.New("block.uses must not be negative"))
	}
	if len(c.Levels.Templates) == 0 {
		errs = append(errs, errors.New("levels.templates must not be empty"))
	}
	if len(c.Levels.SpawnPoints) == 0 {
		errs = append(errs, errors.New("levels.spawn_points must not be empty"))
	}
	if c.Levels.LevelsPerTemplate < 1 {
		errs = append(errs, errors.New("levels.levels_per_template must be at least 1"))
	}
	total := 0.0
	for _, b := range c.Levels.Bands {
		switch b.Kind {
		case "fast", "jumping", "ice_bomber", "tough":
		default:
			errs = append(errs, fmt.Errorf("levels.bands: unknown kind %q", b.Kind))
		}
		total += b.Chance
	}
	if total > 1 {
		errs = append(errs, fmt.Errorf("levels.bands: chances sum to %.2f, more than 1", total))
	}
	for _, t := range c.Levels.Templates {
		for _, p := range t.Platforms {
			if p.W <= 0 || p.H <= 0 {
				errs = append(errs, fmt.Errorf("template %q: platform size must be positive", t.Name))
			}
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlipPreset modifies the config based on a difficulty preset.
func ApplyFlipPreset(cfg *FlipConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.FlipMS = 7000
		cfg.Player.HitWindow = 55
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.FlipMS = 3500
		cfg.Player.HitWindow = 30
	}
}
