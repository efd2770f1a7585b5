package tetris

import "time"

// Effects are short-lived presentation timers driven by the session clock.
type Effects struct {
	// Flash is the remaining duration of the line-clear flash.
	Flash time.Duration
	// Bonus is the remaining duration of the floating points popup.
	Bonus       time.Duration
	BonusPoints int
}

func (e *Effects) decay(dt time.Duration) {
	e.Flash = max(e.Flash-dt, 0)
	e.Bonus = max(e.Bonus-dt, 0)
	if e.Bonus == 0 {
		e.BonusPoints = 0
	}
}

// Session is the complete state of one game. A restart replaces it wholesale.
type Session struct {
	ID string

	Board   *Board
	Current *Piece
	Next    *Piece
	Score   *Score
	State   State

	// Now is the session clock, advanced by every tick's delta.
	Now        time.Duration
	FallTimer  time.Duration
	PauseUntil time.Duration

	GameOverAt    time.Duration
	GameOverUntil time.Duration
	// Settled is set once the game-over delay has elapsed.
	Settled bool

	HighScore    int
	NewHighScore bool

	// LastCleared is the number of rows removed by the most recent lock.
	LastCleared int
	Effects     Effects
}

// IsGameOver reports whether the session has topped out.
func (s *Session) IsGameOver() bool { return s.State == StateGameOver }

// IsPaused reports whether the level-up pause is active.
func (s *Session) IsPaused() bool { return s.State == StateLevelPause }

// PauseRemaining returns the time left in the level-up pause.
func (s *Session) PauseRemaining() time.Duration {
	if !s.IsPaused() {
		return 0
	}
	return max(s.PauseUntil-s.Now, 0)
}

// DisplayHighScore returns the best score to show, including the running score.
func (s *Session) DisplayHighScore() int {
	return max(s.HighScore, s.Score.Points())
}

// Ghost returns the position the current piece would land at on a hard drop.
func (s *Session) Ghost() (x, y int) {
	x, y = s.Current.Position()
	return x, y + s.Current.DropDistance(s.Board)
}
