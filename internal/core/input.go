package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends translate their native key codes into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventType tags an Event.
type EventType int

const (
	EventKeyDown EventType = iota
	EventQuit
)

// Event is one input event produced by a backend.
// Action is only meaningful for EventKeyDown.
type Event struct {
	Type   EventType
	Action Action
}

// KeyDown returns a key press event carrying the given action.
func KeyDown(a Action) Event {
	return Event{Type: EventKeyDown, Action: a}
}

// Quit returns a quit request event.
func Quit() Event {
	return Event{Type: EventQuit}
}

// EventQueue buffers events in arrival order until the next frame drains them.
// It is not safe for concurrent use; backends push from the same goroutine
// that runs the frame.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// It never blocks; an empty queue yields nil.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
