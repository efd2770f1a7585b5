package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/tetris"
)

func TestRotationStates(t *testing.T) {
	expected := map[tetris.Kind]int{
		tetris.KindI: 2,
		tetris.KindO: 1,
		tetris.KindT: 4,
		tetris.KindJ: 4,
		tetris.KindL: 4,
		tetris.KindS: 2,
		tetris.KindZ: 2,
	}

	for _, kind := range tetris.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			p := tetris.NewPiece(kind, 0, 0)
			states := p.Rotations()

			assert.LessOrEqual(t, len(states), 4)
			assert.Equal(t, expected[kind], len(states))
			assert.Equal(t, expected[kind], p.RotationCount())
			for i := range states {
				assert.Equal(t, 4, states[i].Count())
				for j := i + 1; j < len(states); j++ {
					assert.False(t, states[i].Equal(states[j]), "states %d and %d are identical", i, j)
				}
			}
		})
	}
}

func TestShapeRotateClockwise(t *testing.T) {
	rotated := tetris.KindT.Shape().RotateClockwise()

	assert.Equal(t, tetris.Shape{
		{true, false},
		{true, true},
		{true, false},
	}, rotated)
	assert.Equal(t, tetris.Shape{{true}, {true}, {true}, {true}}, tetris.KindI.Shape().RotateClockwise())
}

func TestKindColors(t *testing.T) {
	assert.Equal(t, tetris.ColorLightBlue, tetris.KindI.Color())
	assert.Equal(t, tetris.ColorPink, tetris.KindO.Color())
	assert.Equal(t, tetris.ColorPurple, tetris.KindT.Color())
	assert.Equal(t, tetris.ColorBlue, tetris.KindJ.Color())
	assert.Equal(t, tetris.ColorOrange, tetris.KindL.Color())
	assert.Equal(t, tetris.ColorGreen, tetris.KindS.Color())
	assert.Equal(t, tetris.ColorRed, tetris.KindZ.Color())
	assert.Panics(t, func() { tetris.Kind(7).Color() })
}

func TestSpawnPiece(t *testing.T) {
	tests := []struct {
		kind tetris.Kind
		x    int
	}{
		{tetris.KindI, 3},
		{tetris.KindO, 4},
		{tetris.KindT, 4},
		{tetris.KindZ, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := tetris.SpawnPiece(tt.kind, tetris.DefaultWidth)
			x, y := p.Position()
			assert.Equal(t, tt.x, x)
			assert.Equal(t, 0, y)
			assert.Equal(t, 0, p.Rotation())
		})
	}
}

func TestPieceCollides(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	b.Lock(tetris.Cell{X: 5, Y: 10, Color: tetris.ColorGray})

	tests := []struct {
		name     string
		x, y     int
		collides bool
	}{
		{"inside", 0, 0, false},
		{"column -1", -1, 0, true},
		{"last fitting column", 6, 0, false},
		{"past right wall", 7, 0, true},
		{"bottom row", 0, 19, false},
		{"below floor", 0, 20, true},
		{"above grid", 0, -1, false},
		{"far above grid", 3, -10, false},
		{"overlaps settled cell", 2, 10, true},
		{"beside settled cell", 6, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tetris.NewPiece(tetris.KindI, tt.x, tt.y)
			assert.Equal(t, tt.collides, p.Collides(b))
		})
	}
}

func TestPieceTryMove(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	p := tetris.NewPiece(tetris.KindO, 0, 0)

	assert.False(t, p.TryMove(-1, 0, b))
	x, y := p.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	assert.True(t, p.TryMove(1, 0, b))
	assert.True(t, p.TryMove(0, 1, b))
	x, y = p.Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	assert.Equal(t, 17, p.DropDistance(b))
	for p.TryMove(0, 1, b) {
	}
	_, y = p.Position()
	assert.Equal(t, 18, y)
	assert.Equal(t, 0, p.DropDistance(b))
}

func TestPieceRotate(t *testing.T) {
	t.Run("four rotations return to the start", func(t *testing.T) {
		b := tetris.NewBoard(10, 20)
		for _, kind := range []tetris.Kind{tetris.KindT, tetris.KindJ, tetris.KindL} {
			p := tetris.NewPiece(kind, 4, 8)
			for i := range 4 {
				require.True(t, p.Rotate(b), "%s rotation %d", kind, i)
			}
			x, y := p.Position()
			assert.Equal(t, 0, p.Rotation())
			assert.Equal(t, 4, x)
			assert.Equal(t, 8, y)
		}
	})

	t.Run("rotation wraps for two-state pieces", func(t *testing.T) {
		b := tetris.NewBoard(10, 20)
		p := tetris.NewPiece(tetris.KindS, 4, 8)
		p.Rotate(b)
		assert.Equal(t, 1, p.Rotation())
		p.Rotate(b)
		assert.Equal(t, 0, p.Rotation())
	})

	t.Run("kicks away from the right wall", func(t *testing.T) {
		b := tetris.NewBoard(10, 20)
		p := tetris.NewPiece(tetris.KindI, 8, 5)
		require.True(t, p.Rotate(b))
		require.Equal(t, 1, p.Rotation())

		require.True(t, p.Rotate(b))
		x, y := p.Position()
		assert.Equal(t, 0, p.Rotation())
		assert.Equal(t, 6, x, "-1 and +1 still collide, -2 is the first clear kick")
		assert.Equal(t, 5, y)
	})

	t.Run("left kick wins over right kick", func(t *testing.T) {
		b := tetris.NewBoard(10, 20)
		b.Lock(tetris.Cell{X: 4, Y: 5, Color: tetris.ColorGray})
		p := tetris.NewPiece(tetris.KindT, 4, 5)
		require.False(t, p.Collides(b))

		require.True(t, p.Rotate(b))
		x, _ := p.Position()
		assert.Equal(t, 1, p.Rotation())
		assert.Equal(t, 3, x)
	})

	t.Run("no clear kick leaves the piece untouched", func(t *testing.T) {
		b := tetris.NewBoard(1, 10)
		p := tetris.NewPiece(tetris.KindI, 0, 0)
		require.True(t, p.Rotate(b))
		require.Equal(t, 1, p.Rotation())

		assert.False(t, p.Rotate(b))
		x, y := p.Position()
		assert.Equal(t, 1, p.Rotation())
		assert.Equal(t, 0, x)
		assert.Equal(t, 0, y)
	})

	t.Run("square never changes", func(t *testing.T) {
		b := tetris.NewBoard(10, 20)
		p := tetris.NewPiece(tetris.KindO, 4, 4)
		before := p.Cells()
		assert.True(t, p.Rotate(b))
		assert.Equal(t, before, p.Cells())
	})
}

func TestPieceCells(t *testing.T) {
	p := tetris.NewPiece(tetris.KindT, 2, 3)
	cells := p.Cells()

	require.Len(t, cells, 4)
	assert.Equal(t, []tetris.Cell{
		{X: 3, Y: 3, Color: tetris.ColorPurple},
		{X: 2, Y: 4, Color: tetris.ColorPurple},
		{X: 3, Y: 4, Color: tetris.ColorPurple},
		{X: 4, Y: 4, Color: tetris.ColorPurple},
	}, cells)

	clone := p.Clone()
	clone.TryMove(1, 0, tetris.NewBoard(10, 20))
	x, _ := p.Position()
	assert.Equal(t, 2, x, "moving the clone must not move the original")
}
