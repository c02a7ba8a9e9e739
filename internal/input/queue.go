package input

import "sync"

// Queue is the hand-off buffer between the capture goroutine and the game
// loop. The capture side only pushes, the game loop only drains; the mutex
// is held for the minimum critical section and never across a blocking call.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event to the queue.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain removes and returns all buffered events, most recent first.
// Only the latest key matters for steering, so consumers walk the slice
// front to back for quit detection and take element zero as the newest.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	for i, e := range q.events {
		out[len(out)-1-i] = e
	}
	q.events = q.events[:0]
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
