package core

// The playfield is a fixed-size canvas drawn in the middle of the terminal.
// Game logic addresses it at half the nominal resolution because every
// logical cell is rendered as a 2-column-wide glyph, and the canvas itself
// is drawn half as tall as it is wide.
const (
	// CanvasWidth and CanvasHeight are the nominal canvas dimensions in
	// terminal columns and half-rows.
	CanvasWidth  = 46
	CanvasHeight = 46

	// GridWidth and GridHeight are the logical playfield dimensions.
	// Valid cells are [0, GridWidth) x [0, GridHeight).
	GridWidth  = CanvasWidth/2 - 1
	GridHeight = CanvasHeight/2 - 2
)

// Point is a cell on the logical grid. Value type; equality compares both
// coordinates.
type Point struct {
	X, Y int
}

// TermPoint is a character cell on the physical terminal. It is derived
// from a Point and the current terminal size and is never cached: the
// terminal can be resized between frames.
type TermPoint struct {
	X, Y int
}

// InGrid reports whether p is a valid logical cell.
func (p Point) InGrid() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Display maps a logical cell to its terminal cell for the given terminal
// size. The mapping centers the canvas and saturates at the terminal origin
// so the playfield stays visible on undersized terminals.
func Display(p Point, termW, termH int) TermPoint {
	return TermPoint{
		X: SatSub(termW/2, CanvasWidth/2) + p.X*2 + 1,
		Y: SatSub(termH/2, CanvasHeight/4) + p.Y + 1,
	}
}

// CanvasFrame returns the border rectangle of the canvas in terminal cells
// for the given terminal size.
func CanvasFrame(termW, termH int) Rect {
	left := SatSub(termW/2, CanvasWidth/2)
	top := SatSub(termH/2, CanvasHeight/4)
	right := termW/2 + CanvasWidth/2
	bottom := termH/2 + CanvasHeight/4
	return Rect{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}
}
