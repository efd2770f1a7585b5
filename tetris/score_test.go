package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/tetris"
)

func TestNewScore(t *testing.T) {
	s := tetris.NewScore(tetris.DefaultLinesPerLevel)

	assert.Equal(t, 0, s.Points())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, -1, s.Combo())
	assert.False(t, s.BackToBack())
	assert.Panics(t, func() { tetris.NewScore(0) })
}

func TestScoreComboSequence(t *testing.T) {
	s := tetris.NewScore(8)

	gained := s.OnLinesCleared(1, false)
	assert.Equal(t, 100, gained)
	assert.Equal(t, 0, s.Combo())
	assert.Equal(t, 100, s.Points())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 1, s.Level())

	gained = s.OnLinesCleared(2, false)
	assert.Equal(t, 350, gained)
	assert.Equal(t, 1, s.Combo())
	assert.Equal(t, 450, s.Points())

	assert.Equal(t, 0, s.OnLinesCleared(0, false))
	assert.Equal(t, -1, s.Combo())
	assert.Equal(t, 450, s.Points())
}

func TestScoreBackToBack(t *testing.T) {
	t.Run("consecutive tetrises", func(t *testing.T) {
		s := tetris.NewScore(8)
		assert.Equal(t, 800, s.OnLinesCleared(4, false))
		assert.True(t, s.BackToBack())

		// 800 base, 400 back-to-back, 50 combo
		assert.Equal(t, 1250, s.OnLinesCleared(4, false))
		assert.True(t, s.BackToBack())
		assert.Equal(t, 2050, s.Points())
		assert.Equal(t, 2, s.Level())
	})

	t.Run("empty lock breaks the streak", func(t *testing.T) {
		s := tetris.NewScore(8)
		s.OnLinesCleared(4, false)
		s.OnLinesCleared(0, false)
		assert.False(t, s.BackToBack())

		assert.Equal(t, 800, s.OnLinesCleared(4, false))
	})

	t.Run("smaller clear breaks the streak", func(t *testing.T) {
		s := tetris.NewScore(100)
		s.OnLinesCleared(4, false)
		s.OnLinesCleared(1, false)
		assert.False(t, s.BackToBack())

		// combo is now 2
		assert.Equal(t, 800+100, s.OnLinesCleared(4, false))
	})
}

func TestScoreAllClear(t *testing.T) {
	plain := tetris.NewScore(1)
	clear := tetris.NewScore(1)
	plain.OnLinesCleared(1, false)
	clear.OnLinesCleared(1, false)
	assert.Equal(t, 2, clear.Level())

	base := plain.OnLinesCleared(1, false)
	withBonus := clear.OnLinesCleared(1, true)

	assert.Equal(t, 2000, withBonus-base)
	assert.Equal(t, 2300, withBonus)
}

func TestScoreLevelProgression(t *testing.T) {
	s := tetris.NewScore(8)
	for range 7 {
		s.OnLinesCleared(1, false)
	}
	assert.Equal(t, 1, s.Level())
	s.OnLinesCleared(1, false)
	assert.Equal(t, 2, s.Level())
	for range 2 {
		s.OnLinesCleared(4, false)
	}
	assert.Equal(t, 16, s.Lines())
	assert.Equal(t, 3, s.Level())
}

func TestScoreDrops(t *testing.T) {
	s := tetris.NewScore(8)
	s.SoftDrop(3)
	assert.Equal(t, 3, s.Points())
	s.HardDrop(5)
	assert.Equal(t, 13, s.Points())
	s.HardDrop(0)
	assert.Equal(t, 13, s.Points())
	assert.Equal(t, -1, s.Combo(), "drops do not touch the combo")
}

func TestScoreInvalidLines(t *testing.T) {
	s := tetris.NewScore(8)
	assert.Panics(t, func() { s.OnLinesCleared(5, false) })
	assert.Panics(t, func() { s.OnLinesCleared(-1, false) })
}
