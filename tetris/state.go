package tetris

//go:generate go tool stringer -type=State -trimprefix=State -linecomment

// State is the phase of the session state machine.
type State uint8

const (
	StateFalling      State = iota // falling
	StateLocking                   // locking
	StateLineClearing              // line-clearing
	StateLevelPause                // level-pause
	StateGameOver                  // game-over
)

// AcceptsInput reports whether movement intents are applied in this state.
func (s State) AcceptsInput() bool {
	return s == StateFalling
}
