package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minigamehub/arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
//
// WASD moves; the arrow keys aim, so games that only walk ignore them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "W":
		return core.ActionUp, false
	case "s", "S":
		return core.ActionDown, false
	case "a", "A":
		return core.ActionLeft, false
	case "d", "D":
		return core.ActionRight, false
	case "up":
		return core.ActionAimUp, false
	case "down":
		return core.ActionAimDown, false
	case "left":
		return core.ActionAimLeft, false
	case "right":
		return core.ActionAimRight, false
	case "1":
		return core.ActionChoice1, false
	case "2":
		return core.ActionChoice2, false
	case "3":
		return core.ActionChoice3, false
	case "enter":
		return core.ActionConfirm, false
	case "h", "H":
		return core.ActionHint, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", "P":
		return core.ActionPause, false
	case "r", "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Holdable reports whether an action is continuous and should stay held
// between key repeats.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionAimUp, core.ActionAimDown, core.ActionAimLeft, core.ActionAimRight:
		return true
	default:
		return false
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
