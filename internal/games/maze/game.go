// Package maze implements Maze Escape: walk a freshly generated perfect
// maze from the top-left corner to the exit in the bottom-right corner.
package maze

import (
	"fmt"
	"math/rand"

	"github.com/minigamehub/arcade/internal/config"
	"github.com/minigamehub/arcade/internal/core"
	"github.com/minigamehub/arcade/internal/registry"
)

// Status is the session state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Status line messages.
const (
	msgIdle    = "Press Enter to begin!"
	msgStarted = "Game started! Escape the maze!"
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

// Game implements Maze Escape.
type Game struct {
	cfg config.MazeConfig
	rng *rand.Rand

	grid   *Grid
	player Point
	exit   Point
	trail  []Point
	moves  int
	status Status

	// Elapsed-time clock, advanced by the tick loop
	seconds    int
	clockTicks int
	tickRate   int

	showHint bool
	tick     uint64

	screenW int
	screenH int
}

// New creates a Maze Escape game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to an explicit config.
func NewWithConfig(cfg config.MazeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Escape"
}

// Description returns the menu card text.
func (g *Game) Description() string {
	return "Find your way out of a randomly generated maze."
}

// Tags returns the menu card tags.
func (g *Game) Tags() []string {
	return []string{"puzzle", "maze", "single"}
}

// RanksByTime reports that escapes are ranked by time, not score.
func (g *Game) RanksByTime() bool {
	return true
}

// Reset loads the config and returns the session to idle with a preview maze.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg.Size == 0 {
		cfg, err := config.LoadMaze(configPath)
		if err != nil {
			cfg = config.DefaultMazeConfig()
		}
		if difficultyPreset != "" {
			config.ApplyMazePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.cfg.View.CellWidth < 1 {
		g.cfg.View.CellWidth = 1
	}
	if g.cfg.View.CellHeight < 1 {
		g.cfg.View.CellHeight = 1
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0

	g.grid = Generate(g.cfg.Size, g.rng)
	g.player = Point{}
	g.exit = Point{X: g.grid.Size() - 1, Y: g.grid.Size() - 1}
	g.trail = nil
	g.moves = 0
	g.seconds = 0
	g.clockTicks = 0
	g.showHint = false
	g.status = StatusIdle
}

// start regenerates the maze and begins a run.
func (g *Game) start() {
	g.grid = Generate(g.cfg.Size, g.rng)
	g.player = Point{}
	g.exit = Point{X: g.grid.Size() - 1, Y: g.grid.Size() - 1}
	g.trail = []Point{g.player}
	g.moves = 0
	g.seconds = 0
	g.clockTicks = 0
	g.showHint = false
	g.status = StatusRunning
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.status != StatusRunning {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
			events = append(events, core.Event{
				Kind:    core.EventStarted,
				Message: fmt.Sprintf("maze %dx%d", g.grid.Size(), g.grid.Size()),
			})
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionRestart) {
		g.start()
		events = append(events, core.Event{Kind: core.EventStarted, Message: "restarted"})
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionHint) && g.cfg.Hint.Enabled {
		g.showHint = !g.showHint
	}

	// Arrow keys arrive as aim actions and are ignored here
	for _, m := range []struct {
		action core.Action
		dir    Direction
	}{
		{core.ActionUp, Top},
		{core.ActionRight, Right},
		{core.ActionDown, Bottom},
		{core.ActionLeft, Left},
	} {
		if in.Has(m.action) && g.Move(m.dir) && g.status == StatusWon {
			events = append(events, core.Event{
				Kind:    core.EventWon,
				Message: fmt.Sprintf("escaped in %d seconds and %d moves", g.seconds, g.moves),
			})
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	g.clockTicks++
	if g.clockTicks >= g.tickRate {
		g.clockTicks = 0
		g.seconds++
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Move tries to walk one cell. It is a no-op unless the run is active and
// the wall on that side is open. Reports whether the player moved.
func (g *Game) Move(d Direction) bool {
	if g.status != StatusRunning || !g.grid.CanMove(g.player, d) {
		return false
	}
	g.player = g.player.Step(d)
	g.moves++
	g.trail = append(g.trail, g.player)

	if g.player == g.exit {
		g.status = StatusWon
	}
	return true
}

// Message returns the status line shown under the maze.
func (g *Game) Message() string {
	switch g.status {
	case StatusRunning:
		return msgStarted
	case StatusWon:
		return fmt.Sprintf("Congratulations! You escaped the maze in %d seconds and %d moves.", g.seconds, g.moves)
	default:
		return msgIdle
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.status == StatusWon,
		Won:      g.status == StatusWon,
	}
}

// Summary describes the current run for the leaderboard.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Level:   g.grid.Size(),
		Moves:   g.moves,
		Seconds: g.seconds,
		Won:     g.status == StatusWon,
	}
}

// Grid returns the current maze.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Player returns the player position.
func (g *Game) Player() Point {
	return g.player
}

// Status returns the session state.
func (g *Game) Status() Status {
	return g.status
}
