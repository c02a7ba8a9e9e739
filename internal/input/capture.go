package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Capture owns the background goroutines that poll the terminal for events
// and feed the shared queue. It never reads or mutates game state.
type Capture struct {
	queue *Queue
	stop  chan struct{}
	wg    sync.WaitGroup
}

// StartCapture begins polling events from the screen into q.
// Stop must be called before the screen is finalized.
func StartCapture(screen tcell.Screen, q *Queue) *Capture {
	c := &Capture{
		queue: q,
		stop:  make(chan struct{}),
	}

	// Small buffer between the poller and the translator so a slow frame
	// does not stall tcell's event delivery.
	events := make(chan tcell.Event, 16)

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		// ChannelEvents closes the channel once stop is closed or the
		// screen is finalized.
		screen.ChannelEvents(events, c.stop)
	}()
	go func() {
		defer c.wg.Done()
		for ev := range events {
			if e, ok := Translate(ev); ok {
				c.queue.Push(e)
			}
		}
	}()

	return c
}

// Stop signals both goroutines to exit and joins them.
func (c *Capture) Stop() {
	close(c.stop)
	c.wg.Wait()
}
