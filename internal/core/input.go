package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow
	ActionDown           // Down arrow
	ActionLeft           // Left arrow
	ActionRight          // Right arrow
	ActionConfirm        // C - start from menu, replay after game over
	ActionQuit           // Q, Ctrl+C, window close - exit the process
	ActionPause          // P - pause/unpause game
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
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame holds the input events queued since the previous tick.
// Events keep their arrival order: two turns pressed within one tick are
// applied one after the other.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set queues an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.Actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
