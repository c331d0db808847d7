package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/minigamehub/arcade/internal/core"
	"github.com/minigamehub/arcade/internal/registry"
	"github.com/minigamehub/arcade/internal/storage"
)

// GameModel is the Bubble Tea model for running one arcade game. It drives
// Step from the tick loop, saves finished runs and logs game events.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      *core.HeldKeys
	frame     core.InputFrame
	gameState core.GameState

	runSaved   bool // Whether the current finished run has been saved
	quitting   bool
	backToMenu bool
	embedded   bool // Hosted by another model, which handles the exit
}

// NewGameModel creates a new Bubble Tea model for the given game. A nil
// store disables saving; a nil logger discards events.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      core.NewHeldKeys(holdTicks(cfg.TickRate)),
		frame:     core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Games lay themselves out on every Render, so a resize keeps the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	}

	m.frame.Set(action)
	if Holdable(action) {
		m.held.Press(action)
	}
	return m, nil
}

// handleMouse turns a left click into a pointer event for the next tick.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.frame.ClickAt(msg.X, msg.Y)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.held.Apply(&m.frame)
	result := m.game.Step(m.frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	if m.gameState.GameOver {
		m.saveRun()
	} else {
		m.runSaved = false
	}

	m.held.Tick()
	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventWon, core.EventGameOver, core.EventBossKilled:
		m.logger.Info(ev.Message, "event", ev.Kind)
	default:
		m.logger.Debug(ev.Message, "event", ev.Kind)
	}
}

// saveRun stores a finished run once. Runs that scored nothing and were
// not won are not worth a leaderboard row.
func (m *GameModel) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	run := core.RunSummary{Score: m.gameState.Score, Won: m.gameState.Won}
	if r, ok := m.game.(registry.RunReporter); ok {
		run = r.Summary()
	}
	if run.Score <= 0 && !run.Won {
		return
	}
	if m.store == nil {
		return
	}

	runID, err := m.store.SaveRun(m.game.ID(), run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", runID, "score", run.Score, "seconds", run.Seconds, "won", run.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player asked to quit the arcade rather than go back.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewGameModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return true, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	if gm, ok := final.(GameModel); ok {
		return gm.IsQuitting(), nil
	}
	return true, nil
}
