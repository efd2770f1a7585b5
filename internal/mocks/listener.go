package mocks

import "github.com/plus3/blockfall/tetris"

// EventRecorder is a tetris.Listener that keeps every event it receives
type EventRecorder struct {
	Events []tetris.Event
}

var _ tetris.Listener = (*EventRecorder)(nil)

// HandleEvent records the event
func (r *EventRecorder) HandleEvent(ev tetris.Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the kinds of all recorded events in order
func (r *EventRecorder) Kinds() []tetris.EventKind {
	kinds := make([]tetris.EventKind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Last returns the most recent event of the given kind
func (r *EventRecorder) Last(kind tetris.EventKind) (tetris.Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == kind {
			return r.Events[i], true
		}
	}
	return tetris.Event{}, false
}

// Reset drops all recorded events
func (r *EventRecorder) Reset() {
	r.Events = nil
}
