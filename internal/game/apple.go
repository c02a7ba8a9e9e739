package game

import "github.com/vovakirdan/termsnake/internal/core"

// appleGlyphs is the fixed set of glyphs an apple can render as.
var appleGlyphs = [...]rune{'🍎', '🍏'}

// Apple is a food item on the grid. The controller holds at most one and
// places a new one in the same tick the old one is eaten.
type Apple struct {
	Pos   core.Point
	Glyph rune
}
