package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minigamehub/arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"w moves up", runeKey('w'), core.ActionUp, false},
		{"D moves right", runeKey('D'), core.ActionRight, false},
		{"arrow aims", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{"arrow down aims", tea.KeyMsg{Type: tea.KeyDown}, core.ActionAimDown, false},
		{"digit picks", runeKey('2'), core.ActionChoice2, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"h hints", runeKey('h'), core.ActionHint, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestHoldable(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionAimRight, core.ActionAimDown} {
		if !Holdable(a) {
			t.Errorf("%v should be holdable", a)
		}
	}
	for _, a := range []core.Action{core.ActionConfirm, core.ActionChoice1, core.ActionPause, core.ActionRestart} {
		if Holdable(a) {
			t.Errorf("%v should be a one-shot action", a)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 24},
		{30, 12},
		{1, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := holdTicks(tt.rate); got != tt.want {
			t.Errorf("holdTicks(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}
