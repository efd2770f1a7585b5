// Package palette maps block color tags to concrete colors for the front-ends.
package palette

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/plus3/blockfall/tetris"
)

var blockColors = map[tetris.ColorTag]color.RGBA{
	tetris.ColorBlue:      colornames.Royalblue,
	tetris.ColorGreen:     colornames.Limegreen,
	tetris.ColorRed:       colornames.Crimson,
	tetris.ColorOrange:    colornames.Darkorange,
	tetris.ColorPurple:    colornames.Mediumorchid,
	tetris.ColorPink:      colornames.Hotpink,
	tetris.ColorLightBlue: colornames.Deepskyblue,
	tetris.ColorGray:      colornames.Gray,
	tetris.ColorDarkGray:  colornames.Dimgray,
	tetris.ColorWhite:     colornames.White,
}

// UI colors shared by the front-ends.
var (
	Background = colornames.Black
	Grid       = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	Panel      = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	Text       = colornames.White
	Accent     = colornames.Gold
	Overlay    = color.RGBA{A: 170}
)

// Block returns the fill color for a tag. ColorNone maps to the background.
func Block(tag tetris.ColorTag) color.RGBA {
	if c, ok := blockColors[tag]; ok {
		return c
	}
	return Background
}

// Shade scales the color channels by factor, clamped to [0, 255].
func Shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(max(float64(v)*factor, 0), 255))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// Hex formats the color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
