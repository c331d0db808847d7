// Package shooter implements a top-down survivor shooter: enemies pour in
// from the canvas edges in faster waves while the player levels up and
// picks upgrades and relics.
package shooter

import (
	"fmt"

	"github.com/minigamehub/arcade/internal/config"
	"github.com/minigamehub/arcade/internal/core"
	"github.com/minigamehub/arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game wraps a World with the start screen, pause and restart flow.
type Game struct {
	cfg    config.ShooterConfig
	loaded bool

	world   *World
	started bool
	paused  bool

	seed    int64
	runs    int64
	frameMs float64
	tick    uint64

	screenW int
	screenH int
}

// New creates a shooter that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a shooter bound to an explicit config.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simple Shooting Game"
}

// Description returns the menu card text.
func (g *Game) Description() string {
	return "Survive endless waves, level up and collect relics."
}

// Tags returns the menu card tags.
func (g *Game) Tags() []string {
	return []string{"action", "shooter", "single"}
}

// Reset loads the config and shows the start screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadShooter(configPath)
		if err != nil {
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShooterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loaded = true
	}

	g.seed = rc.Seed
	g.runs = 0
	g.frameMs = rc.FrameMillis()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.started = false
	g.paused = false
	g.world = NewWorld(g.cfg, g.seed, g.frameMs)
}

// start discards the current world and begins a new run. Every run gets
// its own seed derived from the session seed.
func (g *Game) start() {
	g.world = NewWorld(g.cfg, g.seed+g.runs, g.frameMs)
	g.runs++
	g.started = true
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if !g.started {
		if in.Has(core.ActionConfirm) {
			g.start()
			return g.result(core.Event{Kind: core.EventStarted, Message: "run started"})
		}
		return g.result()
	}

	if g.world.Over() {
		if in.Has(core.ActionRestart) {
			g.start()
			return g.result(core.Event{Kind: core.EventStarted, Message: "run restarted"})
		}
		return g.result()
	}

	if g.world.Choice() != ChoiceNone {
		if idx := g.choiceInput(in); idx >= 0 {
			g.world.Choose(idx)
		}
		return g.result(g.world.drainEvents()...)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.world.Tick(in)
	return g.result(g.world.drainEvents()...)
}

// choiceInput returns the option picked this frame by shortcut key or
// pointer click, or -1.
func (g *Game) choiceInput(in core.InputFrame) int {
	n := len(g.world.Offers())
	for _, a := range []core.Action{core.ActionChoice1, core.ActionChoice2, core.ActionChoice3} {
		if idx := core.ChoiceIndex(a); in.Has(a) && idx < n {
			return idx
		}
	}
	if in.Click != nil {
		_, cards := g.cardRects(n)
		for i, r := range cards {
			if r.Contains(in.Click.X, in.Click.Y) {
				return i
			}
		}
	}
	return -1
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.prog.Score,
		GameOver: g.world.Over(),
		Paused:   g.paused || g.world.Paused(),
	}
}

// Summary describes the current run for the leaderboard.
func (g *Game) Summary() core.RunSummary {
	p := g.world.Progress()
	return core.RunSummary{
		Score:   p.Score,
		Level:   p.Level,
		Seconds: p.Elapsed,
	}
}

// World returns the running simulation.
func (g *Game) World() *World {
	return g.world
}

// Started reports whether the start screen was dismissed.
func (g *Game) Started() bool {
	return g.started
}

// DebugString returns a one-line state dump.
func (g *Game) DebugString() string {
	p := g.world.Progress()
	return fmt.Sprintf("tick=%d score=%d level=%d exp=%d/%d hp=%.0f/%.0f enemies=%d bullets=%d choice=%s over=%v",
		g.tick, p.Score, p.Level, p.Exp, p.ExpToNext, g.world.Player.HP, g.world.Player.MaxHP,
		len(g.world.Enemies), len(g.world.Bullets), g.world.Choice(), g.world.Over())
}
