package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventContact is published when an enemy body starts touching the player.
const EventContact = "contact"

// ContactEvent is the payload of EventContact.
type ContactEvent struct {
	Enemy  Entity
	Player Entity
}

// EventQueue is a simple FIFO queue. It is cleared at the end of every
// World.Update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
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

// Peek returns the queued events without removing them. Callers must not
// modify the slice.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
