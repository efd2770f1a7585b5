// Package ui is the ebiten window front-end: it maps keyboard and mouse input to intents,
// steps a tetris.Controller once per ebiten tick and draws the session.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

// Assets is the registry of generated images and fonts used by the renderer. It is built
// once and passed to the renderer; the simulation never sees it.
type Assets struct {
	CellSize int
	Face     text.Face
	blocks   *intmap.Map[tetris.ColorTag, *ebiten.Image]
}

// NewAssets generates a beveled block sprite for every color tag.
func NewAssets(cellSize int) *Assets {
	colors := tetris.Colors()
	a := &Assets{
		CellSize: cellSize,
		Face:     text.NewGoXFace(basicfont.Face7x13),
		blocks:   intmap.New[tetris.ColorTag, *ebiten.Image](len(colors)),
	}
	for _, tag := range colors {
		a.blocks.Put(tag, newBlockImage(cellSize, palette.Block(tag)))
	}
	return a
}

// Block returns the sprite for tag, or nil for ColorNone.
func (a *Assets) Block(tag tetris.ColorTag) *ebiten.Image {
	img, _ := a.blocks.Get(tag)
	return img
}

// Len returns the number of registered block sprites.
func (a *Assets) Len() int {
	return a.blocks.Len()
}

func newBlockImage(size int, base color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	bevel := max(s/8, 2)

	img.Fill(palette.Shade(base, 0.55))
	vector.DrawFilledRect(img, 0, 0, s-bevel, s-bevel, palette.Shade(base, 1.35), false)
	vector.DrawFilledRect(img, bevel, bevel, s-2*bevel, s-2*bevel, base, false)
	return img
}
