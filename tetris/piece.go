package tetris

// kickOffsets are the horizontal offsets tried, in order, when a rotation collides.
var kickOffsets = [...]int{-1, 1, -2, 2}

// Piece is an active tetromino: its kind, the distinct rotation states of that kind, the
// current rotation index and the board position of the shape's top-left corner.
type Piece struct {
	kind      Kind
	rotations []Shape
	rotation  int
	x, y      int
}

// NewPiece creates a piece of the given kind at (x, y) in its spawn orientation.
func NewPiece(kind Kind, x, y int) *Piece {
	return &Piece{
		kind:      kind,
		rotations: rotationsOf(kind.Shape()),
		x:         x,
		y:         y,
	}
}

// SpawnPiece creates a piece horizontally centered on a board of the given width at row 0.
func SpawnPiece(kind Kind, boardWidth int) *Piece {
	return NewPiece(kind, boardWidth/2-kindShapes[kind].Width()/2, 0)
}

// rotationsOf turns the shape clockwise until it repeats, keeping each distinct state once.
func rotationsOf(shape Shape) []Shape {
	states := []Shape{shape}
	current := shape
	for range 3 {
		current = current.RotateClockwise()
		if !containsShape(states, current) {
			states = append(states, current)
		}
	}
	return states
}

func containsShape(states []Shape, s Shape) bool {
	for _, existing := range states {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

// Kind returns the tetromino kind.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the display color of the piece.
func (p *Piece) Color() ColorTag { return kindColors[p.kind] }

// Position returns the board coordinate of the shape's top-left corner.
func (p *Piece) Position() (x, y int) { return p.x, p.y }

// Rotation returns the current rotation index.
func (p *Piece) Rotation() int { return p.rotation }

// RotationCount returns the number of distinct rotation states of the piece.
func (p *Piece) RotationCount() int { return len(p.rotations) }

// Shape returns the current rotation state. The result must not be modified.
func (p *Piece) Shape() Shape { return p.rotations[p.rotation] }

// Rotations returns the distinct rotation states in rotation order.
func (p *Piece) Rotations() []Shape {
	out := make([]Shape, len(p.rotations))
	for i, s := range p.rotations {
		out[i] = s.clone()
	}
	return out
}

// Cells returns the board cells covered by the piece at its current position.
func (p *Piece) Cells() []Cell {
	return p.cellsAt(p.x, p.y)
}

func (p *Piece) cellsAt(x, y int) []Cell {
	shape := p.Shape()
	cells := make([]Cell, 0, 4)
	for r, row := range shape {
		for c, filled := range row {
			if filled {
				cells = append(cells, Cell{X: x + c, Y: y + r, Color: p.Color()})
			}
		}
	}
	return cells
}

// Collides reports whether the piece at its current placement leaves the board sideways or
// through the floor, or overlaps a settled block. Cells above the board never collide.
func (p *Piece) Collides(b *Board) bool {
	return p.collidesAt(b, p.x, p.y)
}

func (p *Piece) collidesAt(b *Board, x, y int) bool {
	for r, row := range p.Shape() {
		for c, filled := range row {
			if !filled {
				continue
			}
			px, py := x+c, y+r
			if px < 0 || px >= b.Width() || py >= b.Height() {
				return true
			}
			if b.Occupied(px, py) {
				return true
			}
		}
	}
	return false
}

// TryMove shifts the piece by (dx, dy) if the destination is clear and reports whether it
// moved.
func (p *Piece) TryMove(dx, dy int, b *Board) bool {
	if p.collidesAt(b, p.x+dx, p.y+dy) {
		return false
	}
	p.x += dx
	p.y += dy
	return true
}

// Rotate advances to the next rotation state. A colliding rotation is retried with the
// horizontal kicks -1, +1, -2, +2 and the first clear one is kept. When none fits the piece
// is left untouched. It reports whether the rotation was applied.
func (p *Piece) Rotate(b *Board) bool {
	prev := p.rotation
	p.rotation = (p.rotation + 1) % len(p.rotations)
	if !p.collidesAt(b, p.x, p.y) {
		return true
	}
	for _, dx := range kickOffsets {
		if !p.collidesAt(b, p.x+dx, p.y) {
			p.x += dx
			return true
		}
	}
	p.rotation = prev
	return false
}

// DropDistance returns how many rows the piece can fall before it collides.
func (p *Piece) DropDistance(b *Board) int {
	n := 0
	for !p.collidesAt(b, p.x, p.y+n+1) {
		n++
	}
	return n
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	clone := *p
	return &clone
}
