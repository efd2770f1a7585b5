package tetris

import "fmt"

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is a single colored block at a board coordinate.
type Cell struct {
	X, Y  int
	Color ColorTag
}

// Board is the fixed-size grid of settled blocks. Row 0 is the top row.
type Board struct {
	width  int
	height int
	cells  []ColorTag
}

// NewBoard creates an empty board. Panics if either dimension is not positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]ColorTag, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Inside reports whether (x, y) lies within the grid.
func (b *Board) Inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether the cell at (x, y) holds a settled block. Cells above the
// grid (y < 0) are never occupied. Any other coordinate must be inside the grid.
func (b *Board) Occupied(x, y int) bool {
	if y < 0 {
		return false
	}
	return !b.At(x, y).Empty()
}

// At returns the color stored at (x, y). Panics when the coordinate is outside the grid.
func (b *Board) At(x, y int) ColorTag {
	if !b.Inside(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	return b.cells[y*b.width+x]
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []ColorTag {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("tetris: row %d outside board of height %d", y, b.height))
	}
	return append([]ColorTag(nil), b.row(y)...)
}

// Lock writes the given cells into the grid. Every cell must be inside the grid, carry a
// color and land on an empty cell; anything else is a caller bug and panics before the
// board is modified.
func (b *Board) Lock(cells ...Cell) {
	for _, c := range cells {
		switch {
		case !b.Inside(c.X, c.Y):
			panic(fmt.Sprintf("tetris: lock cell (%d,%d) outside board", c.X, c.Y))
		case c.Color.Empty() || !c.Color.Valid():
			panic(fmt.Sprintf("tetris: lock cell (%d,%d) has invalid color %s", c.X, c.Y, c.Color))
		case b.Occupied(c.X, c.Y):
			panic(fmt.Sprintf("tetris: lock cell (%d,%d) already occupied", c.X, c.Y))
		}
	}
	for _, c := range cells {
		b.cells[c.Y*b.width+c.X] = c.Color
	}
}

// ClearFullRows removes every full row, shifts the remaining rows down keeping their order
// and fills the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		if write != read {
			copy(b.row(write), b.row(read))
		}
		write--
	}
	for y := write; y >= 0; y-- {
		clear(b.row(y))
	}
	return write + 1
}

// IsAllClear reports whether every cell is empty.
func (b *Board) IsAllClear() bool {
	for _, c := range b.cells {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// IsTopBlocked reports whether any cell of row 0 is occupied.
func (b *Board) IsTopBlocked() bool {
	for _, c := range b.row(0) {
		if !c.Empty() {
			return true
		}
	}
	return false
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

func (b *Board) row(y int) []ColorTag {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.row(y) {
		if c.Empty() {
			return false
		}
	}
	return true
}
