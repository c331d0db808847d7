package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	maze, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if !reflect.DeepEqual(maze, DefaultMazeConfig()) {
		t.Errorf("embedded maze.yaml = %+v, expected %+v", maze, DefaultMazeConfig())
	}

	shooter, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if !reflect.DeepEqual(shooter, DefaultShooterConfig()) {
		t.Errorf("embedded shooter.yaml = %+v, expected %+v", shooter, DefaultShooterConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	writeFile(t, path, "size: 21\n")

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Size != 21 {
		t.Errorf("Size = %d, expected 21", cfg.Size)
	}
	// Unset keys keep their defaults
	if cfg.View.CellWidth != DefaultMazeConfig().View.CellWidth {
		t.Errorf("CellWidth = %d, expected default", cfg.View.CellWidth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMaze(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "size: [1, 2\n")
	if _, err := LoadMaze(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "spawn:\n  decay: 1.5\n")
	if _, err := LoadShooter(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "shooter.yaml"), "player:\n  hp: 250\n")

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Player.HP != 250 {
		t.Errorf("HP = %g, expected 250 from the user config", cfg.Player.HP)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "maze.yaml"), "size: 1\n")

	cfg, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Size != DefaultMazeConfig().Size {
		t.Errorf("invalid user file should fall through to defaults, got size %d", cfg.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		ok     bool
	}{
		{"defaults", func(*ShooterConfig) {}, true},
		{"zero canvas", func(c *ShooterConfig) { c.Canvas.Width = 0 }, false},
		{"zero shoot rate", func(c *ShooterConfig) { c.Player.ShootRate = 0 }, false},
		{"initial below floor", func(c *ShooterConfig) { c.Spawn.InitialPeriodMs = 100 }, false},
		{"decay above one", func(c *ShooterConfig) { c.Spawn.Decay = 1.01 }, false},
		{"drop chance above one", func(c *ShooterConfig) { c.Drops.HPChance = 2 }, false},
		{"bad progression", func(c *ShooterConfig) { c.Difficulty.Progression.Type = "moon" }, false},
		{"initial level above one", func(c *ShooterConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}

	maze := DefaultMazeConfig()
	maze.Size = 1
	if !errors.Is(maze.Validate(), ErrInvalid) {
		t.Error("maze size 1 should be invalid")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{" HARD ", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"", "", false},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyShooterPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Player.HP != 80 {
		t.Errorf("hard preset HP = %g, expected 80", cfg.Player.HP)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyHard)
	if cfg.Size != 25 || cfg.Hint.Enabled {
		t.Errorf("hard maze = %+v", cfg)
	}
	ApplyMazePreset(&cfg, DifficultyEasy)
	if cfg.Size != 10 || !cfg.Hint.Enabled {
		t.Errorf("easy maze = %+v", cfg)
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{15, 0.5},
		{30, 1},
		{90, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(0, tt.elapsed); got != tt.want {
			t.Errorf("Level(%g s) = %g, expected %g", tt.elapsed, got, tt.want)
		}
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(0, 15); got != 0.75 {
		t.Errorf("Level from 0.5 at half progress = %g, expected 0.75", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := dm.Level(0, 30); got != 0.5 {
		t.Errorf("disabled Level = %g, expected the initial level", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := dm.Level(25, 999); got != 0.25 {
		t.Errorf("Level(score 25) = %g, expected 0.25", got)
	}
}
