package game

import "github.com/vovakirdan/termsnake/internal/core"

// Snapshot is a read-only copy of the state the render driver needs for one
// frame. The render side never touches the controller directly.
type Snapshot struct {
	Score int
	Lost  bool

	Body      []core.Point // Head first
	Direction Direction

	Apple    Apple
	HasApple bool

	LastEvent    string
	HasLastEvent bool
}

// Snapshot captures the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Score:        c.score,
		Lost:         c.lost,
		Body:         c.snake.Body(),
		Direction:    c.snake.Direction(),
		HasLastEvent: c.hasLastEvent,
	}
	if c.apple != nil {
		s.Apple = *c.apple
		s.HasApple = true
	}
	if c.hasLastEvent {
		s.LastEvent = c.lastEvent.String()
	}
	return s
}
