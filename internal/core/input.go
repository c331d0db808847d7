package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W - move up
	ActionDown             // S - move down
	ActionLeft             // A - move left
	ActionRight            // D - move right
	ActionAimUp            // Up arrow - aim up (shooter)
	ActionAimDown          // Down arrow - aim down (shooter)
	ActionAimLeft          // Left arrow - aim left (shooter)
	ActionAimRight         // Right arrow - aim right (shooter)
	ActionChoice1          // 1 - first option of an open choice
	ActionChoice2          // 2 - second option of an open choice
	ActionChoice3          // 3 - third option of an open choice
	ActionConfirm          // Enter - start / confirm
	ActionHint             // H - toggle hint overlay (maze)
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	case ActionConfirm:
		return "Confirm"
	case ActionHint:
		return "Hint"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ChoiceIndex maps a choice shortcut action to a zero-based option index.
// Returns -1 for any other action.
func ChoiceIndex(a Action) int {
	switch a {
	case ActionChoice1:
		return 0
	case ActionChoice2:
		return 1
	case ActionChoice3:
		return 2
	default:
		return -1
	}
}

// Pointer is a pointer click in screen cell coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
//
// Actions holds edge-triggered actions (pressed this frame). Held holds
// actions that are currently held down and is polled by continuous
// movement. Click is set when the pointer was pressed this frame.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
	Click   *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held. An action triggered this
// frame counts as held too, so a single tap always moves at least once.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held != nil && f.Held[a] {
		return true
	}
	return f.Has(a)
}

// ClickAt records a pointer click for this frame.
func (f *InputFrame) ClickAt(x, y int) {
	f.Click = &Pointer{X: x, Y: y}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}

// HeldKeys emulates key-up events for terminals, which only report presses
// (plus auto-repeat). A pressed action stays held for holdTicks ticks after
// its most recent press.
type HeldKeys struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldKeys creates a tracker that keeps actions held for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press refreshes the hold window of an action.
func (h *HeldKeys) Press(a Action) {
	h.remaining[a] = h.holdTicks
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Apply copies the held actions into the frame.
func (h *HeldKeys) Apply(f *InputFrame) {
	for a := range h.remaining {
		f.Hold(a)
	}
}

// Tick ages every held action by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
