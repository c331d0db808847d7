package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minigamehub/arcade/internal/core"
	"github.com/minigamehub/arcade/internal/platform/tui"
	"github.com/minigamehub/arcade/internal/registry"
	"github.com/minigamehub/arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter      - Start
  W/A/S/D    - Move
  Arrows     - Aim and shoot (shooter)
  1/2/3      - Pick an upgrade or relic (or click a card)
  H          - Show the path to the exit (maze)
  P          - Pause
  R          - Restart after the run ends
  Esc/B      - Back
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play maze
  arcade play shooter --difficulty hard
  arcade play shooter --seed 42 --fps 30
  arcade play maze --config ./big-maze.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the leaderboard. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, logger, terminalConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
