package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultMazeConfig returns the default Maze Escape configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Size: 15,
		Hint: MazeHint{Enabled: true},
		View: MazeView{
			CellWidth:  3,
			CellHeight: 1,
		},
	}
}

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Canvas: ShooterCanvas{
			Width:  800,
			Height: 600,
		},
		Player: ShooterPlayer{
			Size:         24,
			Speed:        3,
			HP:           100,
			ShootRate:    20,
			BulletSpeed:  6,
			BulletDamage: 10,
		},
		Spawn: ShooterSpawn{
			InitialPeriodMs: 3000,
			MinPeriodMs:     500,
			Decay:           0.98,
			BossPeriodMs:    60000,
		},
		Drops: ShooterDrops{
			HPChance:       0.12,
			SpeedChance:    0.03,
			FireRateChance: 0.03,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze":
		return defaultMazeYAML
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
