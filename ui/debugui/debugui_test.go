package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/tetris"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	assert.Equal(t, float32(0), h.Average())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{0, 1, 2}, h.Ordered())
	assert.Equal(t, float32(1.5), h.Average())

	h.Push(3)
	h.Push(4)
	assert.Equal(t, []float32{2, 3, 4}, h.Ordered())
	assert.Equal(t, float32(3), h.Average())
	assert.Equal(t, float32(4), h.Max())

	assert.Panics(t, func() { NewHistory(0) })
}

func TestControl(t *testing.T) {
	t.Run("running always advances", func(t *testing.T) {
		var c Control
		assert.True(t, c.Advance(time.Millisecond))
	})

	t.Run("paused consumes a single step", func(t *testing.T) {
		c := Control{Paused: true}
		assert.False(t, c.Advance(time.Millisecond))
		c.StepRequested = true
		assert.True(t, c.Advance(time.Millisecond))
		assert.False(t, c.Advance(time.Millisecond))
	})

	t.Run("paused advances a time budget", func(t *testing.T) {
		c := Control{Paused: true, TimeToAdvance: 50 * time.Millisecond}
		ticks := 0
		for c.Advance(20 * time.Millisecond) {
			ticks++
			require.Less(t, ticks, 10)
		}
		assert.Equal(t, 3, ticks)
		assert.Zero(t, c.TimeToAdvance)
		assert.True(t, c.Paused)
	})

	t.Run("resume", func(t *testing.T) {
		c := Control{Paused: true, StepRequested: true, TimeToAdvance: time.Second}
		c.Resume()
		assert.Equal(t, Control{}, c)
	})
}

func TestFieldEditors(t *testing.T) {
	fe := make(fieldEditors)
	editors := fe.of(reflect.TypeFor[tetris.Session]())

	byName := make(map[string]editor)
	for _, f := range editors {
		byName[f.name] = f.editor
	}

	tests := []struct {
		field string
		want  editor
	}{
		{"ID", editorText},
		{"Board", editorDescribed},
		{"Current", editorDescribed},
		{"Score", editorDescribed},
		{"State", editorText},
		{"Now", editorDuration},
		{"FallTimer", editorDuration},
		{"HighScore", editorInt},
		{"NewHighScore", editorBool},
		{"Effects", editorNested},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			require.Contains(t, byName, tt.field)
			assert.Equal(t, tt.want, byName[tt.field])
		})
	}

	t.Run("indexes address the field", func(t *testing.T) {
		s := &tetris.Session{HighScore: 42}
		val := reflect.ValueOf(s).Elem()
		for _, f := range editors {
			if f.name == "HighScore" {
				assert.EqualValues(t, 42, val.Field(f.index).Int())
			}
		}
	})

	t.Run("computed once per type", func(t *testing.T) {
		again := fe.of(reflect.TypeFor[tetris.Session]())
		assert.Equal(t, editors, again)
		assert.Len(t, fe, 1)

		nested := fe.of(reflect.TypeFor[tetris.Effects]())
		assert.Len(t, nested, 3)
		assert.Len(t, fe, 2)
	})
}

func TestDescribe(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	b.Lock(tetris.Cell{X: 0, Y: 19, Color: tetris.ColorRed})
	assert.Equal(t, "10x20, 1 filled", describe(b))

	p := tetris.NewPiece(tetris.KindT, 4, 2)
	assert.Equal(t, "T rot 0/4 at (4,2)", describe(p))

	s := tetris.NewScore(8)
	assert.Equal(t, "0 pts, level 1, 0 lines, combo -1, b2b false", describe(s))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50ms", formatDuration(1500*time.Microsecond))
	assert.Equal(t, "12µs", formatDuration(12*time.Microsecond))
	assert.Equal(t, "800ns", formatDuration(800))
}
