package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

const (
	EventMotionChanged    = "motion_changed"
	EventDirectionChanged = "direction_changed"
	EventFrameAdvanced    = "frame_advanced"
)

// EventQueue is a simple FIFO queue. Events accumulate across ticks until
// drained.
type EventQueue struct {
	items []Event
	limit int
}

// SetLimit caps the number of queued events; older events are dropped first.
// Zero means unbounded.
func (q *EventQueue) SetLimit(n int) {
	if q == nil {
		return
	}
	q.limit = n
	q.trim()
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
	q.trim()
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) trim() {
	if q.limit <= 0 || len(q.items) <= q.limit {
		return
	}
	drop := len(q.items) - q.limit
	q.items = append(q.items[:0], q.items[drop:]...)
}
