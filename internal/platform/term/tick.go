// Package term runs the game against a real terminal: it owns the tick
// scheduler, the render driver, the tcell screen backend, and the main loop
// that wires them to the game state machine.
package term

import "time"

// Scheduler emits tick signals at a fixed rate over an unbuffered channel.
// A send completes only while the game loop is blocked on a receive, so at
// most one tick is ever outstanding; when a frame overruns the interval the
// missed ticks are dropped rather than queued.
type Scheduler struct {
	C <-chan time.Time

	stop chan struct{}
	done chan struct{}
}

// StartScheduler launches the tick goroutine.
func StartScheduler(interval time.Duration) *Scheduler {
	c := make(chan time.Time) // unbuffered on purpose: rendezvous hand-off
	s := &Scheduler{
		C:    c,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case t := <-ticker.C:
				select {
				case c <- t:
				default:
					// Consumer is mid-frame; skip this delivery.
				}
			}
		}
	}()

	return s
}

// Stop terminates the tick goroutine and waits for it to exit.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}
