package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory under $HOME holding configs and scores.
const appDir = ".sandrunner"

// LoadDesert loads the desert runner configuration.
// Search order: customPath -> ~/.sandrunner/configs/desert.yaml -> ./configs/desert.yaml -> embedded default
// Files are decoded over the hard-coded defaults, so a partial file only
// overrides the keys it names.
func LoadDesert(customPath string) (DesertConfig, error) {
	cfg := DefaultDesertConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("desert.yaml"), filepath.Join("configs", "desert.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultDesertConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultDesertConfig()
	if err := yaml.Unmarshal(defaultDesertYAML, &embedded); err != nil || embedded.Validate() != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// ApplyDesertPreset modifies the config based on a difficulty preset.
func ApplyDesertPreset(cfg *DesertConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Player.Invincibility = 2.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Player.Invincibility = 1.0
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c DesertConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player max_health must be positive"))
	}
	if c.Player.DeathDuration <= 0 {
		errs = append(errs, errors.New("player death_duration must be positive"))
	}
	if len(c.Level.Widths) != 3 {
		errs = append(errs, fmt.Errorf("level widths: expected 3 tiers, got %d", len(c.Level.Widths)))
	} else {
		for i := 1; i < len(c.Level.Widths); i++ {
			if c.Level.Widths[i] < c.Level.Widths[i-1] {
				errs = append(errs, errors.New("level widths must be non-decreasing"))
				break
			}
		}
	}
	if c.Level.CullRadius <= 0 {
		errs = append(errs, errors.New("level cull_radius must be positive"))
	}
	if c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0 {
		errs = append(errs, errors.New("camera viewport must be positive"))
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		errs = append(errs, errors.New("camera smoothing must be in (0, 1]"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("gameplay lives must be positive"))
	}
	return errors.Join(errs...)
}
