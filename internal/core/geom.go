// Package core provides fundamental types for the game: the logical grid,
// the logical-to-terminal coordinate mapping, and the cell-buffer screen.
// It contains no external dependencies (especially no tcell) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SatSub returns a-b, saturating at zero instead of going negative.
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
