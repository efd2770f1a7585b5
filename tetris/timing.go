package tetris

import "time"

// Timing holds the pacing constants of a session.
type Timing struct {
	BaseFallDelay time.Duration
	FallDelayStep time.Duration
	MinFallDelay  time.Duration

	LevelPause    time.Duration
	GameOverDelay time.Duration

	Flash time.Duration
	Bonus time.Duration
}

// DefaultTiming returns the standard pacing.
func DefaultTiming() Timing {
	return Timing{
		BaseFallDelay: 500 * time.Millisecond,
		FallDelayStep: 35 * time.Millisecond,
		MinFallDelay:  80 * time.Millisecond,
		LevelPause:    1200 * time.Millisecond,
		GameOverDelay: 5000 * time.Millisecond,
		Flash:         200 * time.Millisecond,
		Bonus:         1600 * time.Millisecond,
	}
}

// FallDelay returns the gravity interval for a level. It never increases with the level and
// never drops below MinFallDelay.
func (t Timing) FallDelay(level int) time.Duration {
	level = max(level, 1)
	return max(t.MinFallDelay, t.BaseFallDelay-time.Duration(level-1)*t.FallDelayStep)
}
