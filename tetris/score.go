package tetris

import "fmt"

// DefaultLinesPerLevel is the number of cleared lines needed to advance one level.
const DefaultLinesPerLevel = 8

// Points awarded before bonuses, indexed by the number of lines cleared at once.
var lineScores = [...]int{0, 100, 300, 500, 800}

const (
	comboPoints    = 50
	allClearPoints = 1000
)

// Score tracks points, level and clear streaks. Its state changes only through
// OnLinesCleared, SoftDrop and HardDrop.
type Score struct {
	points        int
	level         int
	lines         int
	combo         int
	backToBack    bool
	linesPerLevel int
}

// NewScore creates a fresh score at level 1. Panics if linesPerLevel is not positive.
func NewScore(linesPerLevel int) *Score {
	if linesPerLevel <= 0 {
		panic(fmt.Sprintf("tetris: lines per level must be positive, got %d", linesPerLevel))
	}
	return &Score{
		level:         1,
		combo:         -1,
		linesPerLevel: linesPerLevel,
	}
}

// Points returns the total score.
func (s *Score) Points() int { return s.points }

// Level returns the current level, starting at 1.
func (s *Score) Level() int { return s.level }

// Lines returns the total number of cleared lines.
func (s *Score) Lines() int { return s.lines }

// Combo returns the number of consecutive clearing locks minus one, or -1 with no combo.
func (s *Score) Combo() int { return s.combo }

// BackToBack reports whether the last clearing lock was a four-line clear.
func (s *Score) BackToBack() bool { return s.backToBack }

// LinesPerLevel returns the number of lines needed per level.
func (s *Score) LinesPerLevel() int { return s.linesPerLevel }

// OnLinesCleared applies the result of one lock and returns the points gained. Zero lines
// ends any combo and back-to-back streak.
func (s *Score) OnLinesCleared(lines int, allClear bool) int {
	if lines < 0 || lines >= len(lineScores) {
		panic(fmt.Sprintf("tetris: cannot clear %d lines at once", lines))
	}
	if lines == 0 {
		s.combo = -1
		s.backToBack = false
		return 0
	}

	s.combo++
	gained := lineScores[lines] * s.level
	if lines == 4 && s.backToBack {
		gained += gained / 2
	}
	s.backToBack = lines == 4
	if s.combo > 0 {
		gained += comboPoints * s.combo * s.level
	}
	if allClear {
		gained += allClearPoints * s.level
	}

	s.points += gained
	s.lines += lines
	s.level = s.lines/s.linesPerLevel + 1
	return gained
}

// SoftDrop awards one point per row advanced by the player.
func (s *Score) SoftDrop(cells int) {
	s.points += max(cells, 0)
}

// HardDrop awards two points per row fallen instantly.
func (s *Score) HardDrop(cells int) {
	s.points += 2 * max(cells, 0)
}
