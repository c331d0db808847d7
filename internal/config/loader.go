package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is satisfied by every game config struct.
type validator interface {
	Validate() error
}

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default -> hardcoded default
func load[T validator](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// A custom path must exist and parse
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local directories are optional; broken files are skipped
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// LoadMaze loads Maze Escape configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze", customPath, defaultMazeYAML, DefaultMazeConfig)
}

// LoadShooter loads shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("shooter", customPath, defaultShooterYAML, DefaultShooterConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// applyProgression sets the shared difficulty fields of a preset.
func applyProgression(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyMazePreset modifies the maze size based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Size = 10
		cfg.Hint.Enabled = true
	case DifficultyNormal:
		cfg.Size = 15
	case DifficultyHard:
		cfg.Size = 25
		cfg.Hint.Enabled = false
	}
}

// ApplyShooterPreset modifies the shooter config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	applyProgression(&cfg.Difficulty, preset)

	// Adjust survivability and pacing
	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 150
		cfg.Spawn.InitialPeriodMs = 3500
	case DifficultyHard:
		cfg.Player.HP = 80
		cfg.Spawn.InitialPeriodMs = 2500
	}
}
