package ui

import "github.com/plus3/blockfall/tetris"

// Logical screen geometry.
const (
	ScreenWidth  = 540
	ScreenHeight = 600
	CellSize     = 28

	boardX      = 20
	boardY      = 20
	boardWidth  = tetris.DefaultWidth * CellSize
	boardHeight = tetris.DefaultHeight * CellSize

	panelX     = boardX + boardWidth + 24
	panelWidth = ScreenWidth - panelX - 20
	previewBox = 4 * CellSize
)

type rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies within r.
func (r rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

var restartButton = rect{
	X: boardX + (boardWidth-160)/2,
	Y: boardY + boardHeight/2 + 60,
	W: 160,
	H: 40,
}

// cellOrigin returns the screen position of a board cell.
func cellOrigin(x, y int) (float64, float64) {
	return float64(boardX + x*CellSize), float64(boardY + y*CellSize)
}

// previewOrigin centers a shape of the given size inside the next-piece box.
func previewOrigin(shapeWidth, shapeHeight int) (float64, float64) {
	x := panelX + (previewBox-shapeWidth*CellSize)/2
	y := boardY + 24 + (previewBox-shapeHeight*CellSize)/2
	return float64(x), float64(y)
}

// bonusRise returns the vertical offset and opacity of the bonus popup given its remaining
// fraction of lifetime.
func bonusRise(remaining float64) (offset, alpha float64) {
	remaining = min(max(remaining, 0), 1)
	return (1 - remaining) * 40, remaining
}
