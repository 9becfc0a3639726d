package event

import "github.com/arkadyan/novablast/core"

// queueCap bounds the number of buffered events between drains
// The shell drains once per frame; overflow drops the oldest events
const queueCap = 256

// GameEvent is a single gameplay event
type GameEvent struct {
	Type    Type
	Entity  core.Entity
	Payload any
}

// Queue is a bounded FIFO of gameplay events
// The world and its systems are single-threaded, so no locking is needed;
// the shell drains the queue between frames, never during a tick
type Queue struct {
	items []GameEvent
}

func NewQueue() *Queue {
	return &Queue{items: make([]GameEvent, 0, queueCap)}
}

// Push appends an event, dropping the oldest when full
func (q *Queue) Push(ev GameEvent) {
	if len(q.items) >= queueCap {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, ev)
}

// Drain returns all pending events in FIFO order and empties the queue
func (q *Queue) Drain() []GameEvent {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Len returns the number of buffered events
func (q *Queue) Len() int {
	return len(q.items)
}
