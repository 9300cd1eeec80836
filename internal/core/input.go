package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the platform to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSelect         // Space - select (or retract) the cell under the cursor
	ActionRetract        // Backspace - drop the last selected cell
	ActionSubmit         // Enter - submit the current word
	ActionEnd            // E - end the session
	ActionRestart        // R - start a new puzzle
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionSelect:
		return "Select"
	case ActionRetract:
		return "Retract"
	case ActionSubmit:
		return "Submit"
	case ActionEnd:
		return "End"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Move returns the cursor offset for a movement action.
// Non-movement actions return ok=false.
func (a Action) Move() (dRow, dCol int, ok bool) {
	switch a {
	case ActionUp:
		return -1, 0, true
	case ActionDown:
		return 1, 0, true
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
