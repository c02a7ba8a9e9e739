package game

import "github.com/vovakirdan/termsnake/internal/core"

// Snake owns the body segments (head at index 0, tail last) and the current
// heading. The body never has fewer than one segment and never shrinks.
type Snake struct {
	cells []core.Point
	dir   Direction
}

// newSnake creates a one-segment snake at the given cell, not yet moving.
func newSnake(start core.Point) *Snake {
	return &Snake{
		cells: []core.Point{start},
		dir:   DirStopped,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	if len(s.cells) == 0 {
		panic("game: snake body is empty")
	}
	return s.cells[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.cells))
	copy(out, s.cells)
	return out
}

// occupies reports whether any segment sits on the given cell.
func (s *Snake) occupies(p core.Point) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// steer updates the heading, rejecting a change that would reverse the
// snake directly into itself.
func (s *Snake) steer(d Direction) {
	if d == DirStopped || d.reverses(s.dir) {
		return
	}
	s.dir = d
}

// advance moves the snake one cell in its heading and reports whether the
// move stayed inside the grid. The body is shifted toward the tail in place
// (the old head becomes the second segment, the old tail cell drops off),
// then the head moves one cell. On a boundary hit the shift has happened
// but the head stays where it was, matching the lost-state render.
func (s *Snake) advance() (ok bool) {
	head := s.Head()
	copy(s.cells[1:], s.cells[:len(s.cells)-1])
	s.cells[0] = head

	switch s.dir {
	case DirLeft:
		if head.X == 0 {
			return false
		}
		s.cells[0].X--
	case DirRight:
		if head.X >= core.GridWidth-1 {
			return false
		}
		s.cells[0].X++
	case DirUp:
		if head.Y == 0 {
			return false
		}
		s.cells[0].Y--
	case DirDown:
		if head.Y >= core.GridHeight-1 {
			return false
		}
		s.cells[0].Y++
	}
	return true
}

// grow appends a segment at the current tail cell. It overlaps the tail
// until the next advance pulls the body forward.
func (s *Snake) grow() {
	s.cells = append(s.cells, s.cells[len(s.cells)-1])
}

// hitsSelf reports whether the head collides with the body past the first
// two segments. Segment 1 is always adjacent to the head by construction,
// so it can coincide with it legitimately (e.g. right after growing).
func (s *Snake) hitsSelf() bool {
	head := s.Head()
	for i, c := range s.cells {
		if i < 2 {
			continue
		}
		if c == head {
			return true
		}
	}
	return false
}
