// Package input captures terminal events on a background goroutine and
// hands them to the game loop through a mutex-guarded queue.
package input

// Action represents a semantic game action, abstracted from physical key
// presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow - steer up
	ActionDown         // Down arrow - steer down
	ActionLeft         // Left arrow - steer left
	ActionRight        // Right arrow - steer right
	ActionQuit         // Q, Ctrl+C - leave the game
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four steering keys.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
