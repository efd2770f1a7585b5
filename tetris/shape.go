package tetris

// Shape is a rectangular occupancy mask, indexed [row][column].
type Shape [][]bool

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// RotateClockwise returns the shape turned 90° clockwise. The receiver is not modified.
func (s Shape) RotateClockwise() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for r := range rotated {
		rotated[r] = make([]bool, h)
		for c := range h {
			rotated[r][c] = s[h-1-c][r]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]bool(nil), row...)
	}
	return out
}
