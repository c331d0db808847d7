package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMillis returns the simulated duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (lost or won)
	Paused   bool // Whether the game is paused
	Won      bool // Whether the run ended in a win
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventStarted
	EventLevelUp
	EventBossSpawned
	EventBossKilled
	EventUpgradeChosen
	EventRelicChosen
	EventItemPicked
	EventWon
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventLevelUp:
		return "level_up"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossKilled:
		return "boss_killed"
	case EventUpgradeChosen:
		return "upgrade_chosen"
	case EventRelicChosen:
		return "relic_chosen"
	case EventItemPicked:
		return "item_picked"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Event is reported by a game for the platform to log.
type Event struct {
	Kind    EventKind
	Message string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunSummary describes a finished run for the leaderboard.
type RunSummary struct {
	Score   int
	Level   int
	Moves   int
	Seconds int
	Won     bool
}
