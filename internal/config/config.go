// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("config: invalid value")

// MazeConfig contains all configuration for the Maze Escape game.
type MazeConfig struct {
	Size int      `yaml:"size"` // Side length N of the square grid
	Hint MazeHint `yaml:"hint"`
	View MazeView `yaml:"view"`
}

// MazeHint controls the solution overlay.
type MazeHint struct {
	Enabled bool `yaml:"enabled"`
}

// MazeView controls how one maze cell maps onto terminal cells.
type MazeView struct {
	CellWidth  int `yaml:"cell_width"`  // Columns per maze cell, walls excluded
	CellHeight int `yaml:"cell_height"` // Rows per maze cell, walls excluded
}

// Validate reports the first out-of-range field.
func (c MazeConfig) Validate() error {
	switch {
	case c.Size < 2:
		return fmt.Errorf("%w: maze size %d must be at least 2", ErrInvalid, c.Size)
	case c.View.CellWidth < 1:
		return fmt.Errorf("%w: maze view.cell_width %d must be positive", ErrInvalid, c.View.CellWidth)
	case c.View.CellHeight < 1:
		return fmt.Errorf("%w: maze view.cell_height %d must be positive", ErrInvalid, c.View.CellHeight)
	}
	return nil
}

// ShooterConfig contains all configuration for the survivor shooter.
type ShooterConfig struct {
	Canvas     ShooterCanvas    `yaml:"canvas"`
	Player     ShooterPlayer    `yaml:"player"`
	Spawn      ShooterSpawn     `yaml:"spawn"`
	Drops      ShooterDrops     `yaml:"drops"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterCanvas is the logical playfield in canvas units.
type ShooterCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterPlayer defines the starting player stats.
type ShooterPlayer struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	HP           float64 `yaml:"hp"`
	ShootRate    int     `yaml:"shoot_rate"` // Ticks between shots
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletDamage float64 `yaml:"bullet_damage"`
}

// ShooterSpawn defines enemy pacing.
type ShooterSpawn struct {
	InitialPeriodMs float64 `yaml:"initial_period_ms"`
	MinPeriodMs     float64 `yaml:"min_period_ms"`
	Decay           float64 `yaml:"decay"` // Period multiplier applied per spawn tick
	BossPeriodMs    float64 `yaml:"boss_period_ms"`
}

// ShooterDrops defines item drop chances for a regular enemy kill.
// One roll is made per kill; the chances must sum to at most 1.
type ShooterDrops struct {
	HPChance       float64 `yaml:"hp_chance"`
	SpeedChance    float64 `yaml:"speed_chance"`
	FireRateChance float64 `yaml:"fire_rate_chance"`
}

// Validate reports the first out-of-range field.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: shooter canvas %gx%g must be positive", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: shooter player.size must be positive", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: shooter player.speed must be positive", ErrInvalid)
	case c.Player.HP <= 0:
		return fmt.Errorf("%w: shooter player.hp must be positive", ErrInvalid)
	case c.Player.ShootRate < 1:
		return fmt.Errorf("%w: shooter player.shoot_rate must be at least 1", ErrInvalid)
	case c.Spawn.MinPeriodMs <= 0:
		return fmt.Errorf("%w: shooter spawn.min_period_ms must be positive", ErrInvalid)
	case c.Spawn.InitialPeriodMs < c.Spawn.MinPeriodMs:
		return fmt.Errorf("%w: shooter spawn.initial_period_ms below min_period_ms", ErrInvalid)
	case c.Spawn.Decay <= 0 || c.Spawn.Decay > 1:
		return fmt.Errorf("%w: shooter spawn.decay %g must be in (0, 1]", ErrInvalid, c.Spawn.Decay)
	case c.Spawn.BossPeriodMs <= 0:
		return fmt.Errorf("%w: shooter spawn.boss_period_ms must be positive", ErrInvalid)
	case c.Drops.HPChance < 0 || c.Drops.SpeedChance < 0 || c.Drops.FireRateChance < 0:
		return fmt.Errorf("%w: shooter drop chances must not be negative", ErrInvalid)
	case c.Drops.HPChance+c.Drops.SpeedChance+c.Drops.FireRateChance > 1:
		return fmt.Errorf("%w: shooter drop chances sum above 1", ErrInvalid)
	}
	return c.Difficulty.Validate()
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed seconds at which max difficulty is reached
}

// Validate reports the first out-of-range field.
func (c DifficultyConfig) Validate() error {
	if c.InitialLevel < 0 || c.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level %g must be in [0, 1]", ErrInvalid, c.InitialLevel)
	}
	switch c.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, c.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

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
