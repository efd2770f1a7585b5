package tetris

import "github.com/plus3/blockfall/engine"

// ClockSystem advances the session clock, decays effect timers and resolves the level-up
// pause and game-over deadlines.
type ClockSystem struct {
	c *Controller
}

func (sys *ClockSystem) Execute(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	s.Now += frame.DeltaTime
	s.Effects.decay(frame.DeltaTime)

	switch s.State {
	case StateLevelPause:
		if s.Now >= s.PauseUntil {
			s.State = StateFalling
		}
	case StateGameOver:
		if !s.Settled && s.Now >= s.GameOverUntil {
			s.Settled = true
			sys.c.emit(frame, Event{Kind: EventGameOverSettled, Score: s.Score.Points(), HighScore: s.HighScore})
		}
	}
}

// InputSystem applies the tick's movement intents to the current piece.
type InputSystem struct {
	c *Controller
}

func (sys *InputSystem) Execute(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	for _, intent := range sys.c.pending {
		if !s.State.AcceptsInput() {
			return
		}
		switch intent {
		case IntentMoveLeft:
			s.Current.TryMove(-1, 0, s.Board)
		case IntentMoveRight:
			s.Current.TryMove(1, 0, s.Board)
		case IntentSoftDrop:
			if s.Current.TryMove(0, 1, s.Board) {
				s.Score.SoftDrop(1)
			}
		case IntentRotate:
			s.Current.Rotate(s.Board)
		case IntentHardDrop:
			dropped := 0
			for s.Current.TryMove(0, 1, s.Board) {
				dropped++
			}
			if dropped > 0 {
				s.Score.HardDrop(dropped)
			}
			s.State = StateLocking
		}
	}
}

// GravitySystem moves the current piece down once the fall timer exceeds the level's delay.
type GravitySystem struct {
	c *Controller
}

func (sys *GravitySystem) Execute(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	if s.State != StateFalling {
		return
	}
	s.FallTimer += frame.DeltaTime
	if s.FallTimer <= sys.c.timing.FallDelay(s.Score.Level()) {
		return
	}
	s.FallTimer = 0
	if !s.Current.TryMove(0, 1, s.Board) {
		s.State = StateLocking
	}
}

// LockSystem merges the current piece into the board.
type LockSystem struct {
	c *Controller
}

func (sys *LockSystem) Execute(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	if s.State != StateLocking {
		return
	}
	s.Board.Lock(s.Current.Cells()...)
	s.FallTimer = 0
	s.State = StateLineClearing
	sys.c.emit(frame, Event{Kind: EventPieceLocked, Score: s.Score.Points()})
}

// LineClearSystem clears full rows, scores them and decides what follows the lock: a level
// pause, game over or the next piece.
type LineClearSystem struct {
	c *Controller
}

func (sys *LineClearSystem) Execute(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	if s.State != StateLineClearing {
		return
	}

	prevLevel := s.Score.Level()
	cleared := s.Board.ClearFullRows()
	allClear := s.Board.IsAllClear()
	gained := s.Score.OnLinesCleared(cleared, allClear)
	s.LastCleared = cleared
	s.State = StateFalling

	if cleared > 0 {
		s.Effects.Flash = sys.c.timing.Flash
		s.Effects.Bonus = sys.c.timing.Bonus
		s.Effects.BonusPoints = gained
		sys.c.emit(frame, Event{
			Kind:     EventLinesCleared,
			Lines:    cleared,
			Points:   gained,
			AllClear: allClear,
			Level:    s.Score.Level(),
			Score:    s.Score.Points(),
		})
	}

	if s.Score.Level() > prevLevel {
		s.State = StateLevelPause
		s.PauseUntil = s.Now + sys.c.timing.LevelPause
		sys.c.emit(frame, Event{Kind: EventLevelUp, Level: s.Score.Level(), Score: s.Score.Points()})
	}

	if s.Board.IsTopBlocked() {
		sys.c.gameOver(frame)
		return
	}

	s.Current, s.Next = s.Next, sys.c.factory.Next()
	if s.Current.Collides(s.Board) {
		// The spawn area is filled below row 0.
		sys.c.gameOver(frame)
	}
}
