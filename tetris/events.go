package tetris

//go:generate go tool stringer -type=EventKind -trimprefix=Event -linecomment

// EventKind identifies a discrete game event.
type EventKind uint8

const (
	EventPieceLocked     EventKind = iota + 1 // piece-locked
	EventLinesCleared                         // lines-cleared
	EventLevelUp                              // level-up
	EventGameOver                             // game-over
	EventGameOverSettled                      // game-over-settled
	EventRestarted                            // restarted
)

// Event describes something that happened during a tick. Only the fields relevant to the
// kind are set.
type Event struct {
	Kind      EventKind
	SessionID string

	// Lines, Points and AllClear describe an EventLinesCleared.
	Lines    int
	Points   int
	AllClear bool

	Level        int
	Score        int
	HighScore    int
	NewHighScore bool
}

// Listener observes game events. Events are delivered after every system of the tick has
// run, and listeners must not mutate the session.
type Listener interface {
	HandleEvent(ev Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) {
	f(ev)
}
