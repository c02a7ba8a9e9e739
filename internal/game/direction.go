// Package game implements the snake state machine: movement, growth, apple
// placement, collisions, and the per-tick step that ties them together.
package game

import "github.com/vovakirdan/termsnake/internal/input"

// Direction represents the snake's heading. DirStopped is the initial value
// and disables movement until the first steering input arrives.
type Direction int

const (
	DirStopped Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirStopped:
		return "stopped"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// reverses reports whether moving in d would turn the snake directly back
// into its own neck while it is heading in current.
func (d Direction) reverses(current Direction) bool {
	return (d == DirUp && current == DirDown) ||
		(d == DirDown && current == DirUp) ||
		(d == DirLeft && current == DirRight) ||
		(d == DirRight && current == DirLeft)
}

// directionFor maps a steering action to its direction.
func directionFor(a input.Action) Direction {
	switch a {
	case input.ActionUp:
		return DirUp
	case input.ActionDown:
		return DirDown
	case input.ActionLeft:
		return DirLeft
	case input.ActionRight:
		return DirRight
	default:
		return DirStopped
	}
}
