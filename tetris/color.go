package tetris

//go:generate go tool stringer -type=ColorTag -linecomment

// ColorTag identifies the color of a settled or falling block. ColorNone marks an
// empty board cell.
type ColorTag uint8

const (
	ColorNone      ColorTag = iota // none
	ColorBlue                      // blue
	ColorGreen                     // green
	ColorRed                       // red
	ColorOrange                    // orange
	ColorPurple                    // purple
	ColorPink                      // pink
	ColorLightBlue                 // lightblue
	ColorGray                      // gray
	ColorDarkGray                  // darkgray
	ColorWhite                     // white
)

// Colors returns every non-empty color tag in declaration order.
func Colors() []ColorTag {
	return []ColorTag{
		ColorBlue, ColorGreen, ColorRed, ColorOrange, ColorPurple,
		ColorPink, ColorLightBlue, ColorGray, ColorDarkGray, ColorWhite,
	}
}

// Empty reports whether c marks an empty cell.
func (c ColorTag) Empty() bool {
	return c == ColorNone
}

// Valid reports whether c is one of the declared tags.
func (c ColorTag) Valid() bool {
	return c <= ColorWhite
}
