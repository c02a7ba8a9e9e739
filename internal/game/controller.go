package game

import (
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/input"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 10

// startCell is where the snake spawns.
var startCell = core.Point{X: core.CanvasWidth / 4, Y: core.CanvasHeight/4 - 1}

// Controller is the aggregate game state. All fields are mutated only from
// the game loop goroutine; concurrent input arrives through the queue the
// loop drains before each tick.
type Controller struct {
	rng *rand.Rand

	snake *Snake
	apple *Apple
	score int
	lost  bool

	closeRequested bool

	lastEvent    input.Event
	hasLastEvent bool
}

// NewController creates a fresh game seeded for apple placement.
func NewController(seed int64) *Controller {
	return &Controller{
		rng:   rand.New(rand.NewSource(seed)),
		snake: newSnake(startCell),
	}
}

// Tick advances the game by one step using the events drained from the
// input queue since the previous tick, most recent first. Once the game is
// lost only quit detection keeps running; the simulation stays frozen.
func (c *Controller) Tick(events []input.Event) {
	c.observe(events)

	if c.lost {
		return
	}

	c.steer()
	if c.snake.dir != DirStopped && !c.snake.advance() {
		c.lost = true
	}
	c.consumeApple()
	c.placeApple()
	if c.snake.hitsSelf() {
		c.lost = true
	}
}

// observe walks the drained events for quit keys and records the newest
// one as last-observed for steering and the trace overlay.
func (c *Controller) observe(events []input.Event) {
	for _, e := range events {
		if e.Kind == input.KindKey && e.Action == input.ActionQuit {
			c.closeRequested = true
		}
	}
	if len(events) > 0 {
		c.lastEvent = events[0]
		c.hasLastEvent = true
	}
}

// steer applies the steering intent of the last observed key event.
func (c *Controller) steer() {
	if !c.hasLastEvent || c.lastEvent.Kind != input.KindKey {
		return
	}
	if c.lastEvent.Action.IsDirection() {
		c.snake.steer(directionFor(c.lastEvent.Action))
	}
}

// consumeApple eats the apple if the head reached it: the apple disappears,
// the score goes up by one and the snake grows by a tail segment.
func (c *Controller) consumeApple() {
	if c.apple == nil || c.apple.Pos != c.snake.Head() {
		return
	}
	c.apple = nil
	c.score++
	c.snake.grow()
}

// placeApple spawns a new apple on a uniformly random free cell when none
// is present. Cells occupied by the snake are excluded so the apple is
// always reachable. If the snake has filled the whole grid there is nowhere
// left to spawn and the apple stays absent.
func (c *Controller) placeApple() {
	if c.apple != nil {
		return
	}

	var free []core.Point
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			p := core.Point{X: x, Y: y}
			if !c.snake.occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return
	}

	c.apple = &Apple{
		Pos:   free[c.rng.Intn(len(free))],
		Glyph: appleGlyphs[c.rng.Intn(len(appleGlyphs))],
	}
}

// Score returns the number of apples eaten.
func (c *Controller) Score() int {
	return c.score
}

// Lost reports whether the game ended in a collision.
func (c *Controller) Lost() bool {
	return c.lost
}

// CloseRequested reports whether the player asked to quit.
func (c *Controller) CloseRequested() bool {
	return c.closeRequested
}
