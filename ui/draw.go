package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

// Renderer draws a session using a fixed asset registry.
type Renderer struct {
	assets *Assets
	timing tetris.Timing
}

func NewRenderer(assets *Assets, timing tetris.Timing) *Renderer {
	return &Renderer{assets: assets, timing: timing}
}

// Draw paints the full frame for s.
func (r *Renderer) Draw(screen *ebiten.Image, s *tetris.Session) {
	screen.Fill(palette.Background)

	r.drawBoard(screen, s.Board)
	if s.State.AcceptsInput() {
		r.drawGhost(screen, s)
	}
	if !s.IsGameOver() {
		r.drawPiece(screen, s.Current)
	}
	r.drawFlash(screen, s.Effects)
	r.drawPanel(screen, s)
	r.drawBonus(screen, s.Effects)

	switch {
	case s.IsGameOver():
		r.drawGameOver(screen, s)
	case s.IsPaused():
		r.drawLevelPause(screen, s)
	}
}

func (r *Renderer) drawBoard(screen *ebiten.Image, b *tetris.Board) {
	vector.DrawFilledRect(screen, boardX, boardY, boardWidth, boardHeight, palette.Panel, false)
	for y := range b.Height() {
		for x := range b.Width() {
			px, py := cellOrigin(x, y)
			if tag := b.At(x, y); !tag.Empty() {
				r.drawBlock(screen, tag, px, py, 1)
				continue
			}
			vector.StrokeRect(screen, float32(px), float32(py), CellSize, CellSize, 1, palette.Grid, false)
		}
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, boardWidth+2, boardHeight+2, 2, palette.Text, false)
}

func (r *Renderer) drawPiece(screen *ebiten.Image, p *tetris.Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		px, py := cellOrigin(c.X, c.Y)
		r.drawBlock(screen, c.Color, px, py, 1)
	}
}

func (r *Renderer) drawGhost(screen *ebiten.Image, s *tetris.Session) {
	gx, gy := s.Ghost()
	cx, cy := s.Current.Position()
	for _, c := range s.Current.Cells() {
		y := c.Y + gy - cy
		if y < 0 {
			continue
		}
		px, py := cellOrigin(c.X+gx-cx, y)
		r.drawBlock(screen, c.Color, px, py, 0.25)
	}
}

func (r *Renderer) drawBlock(screen *ebiten.Image, tag tetris.ColorTag, x, y, alpha float64) {
	img := r.assets.Block(tag)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

func (r *Renderer) drawFlash(screen *ebiten.Image, fx tetris.Effects) {
	if fx.Flash <= 0 || r.timing.Flash <= 0 {
		return
	}
	alpha := uint8(160 * float64(fx.Flash) / float64(r.timing.Flash))
	vector.DrawFilledRect(screen, boardX, boardY, boardWidth, boardHeight, color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}, false)
}

func (r *Renderer) drawBonus(screen *ebiten.Image, fx tetris.Effects) {
	if fx.Bonus <= 0 || fx.BonusPoints == 0 || r.timing.Bonus <= 0 {
		return
	}
	offset, alpha := bonusRise(float64(fx.Bonus) / float64(r.timing.Bonus))
	r.drawText(screen, fmt.Sprintf("+%d", fx.BonusPoints), boardX+boardWidth/2, boardY+boardHeight/3-offset, 3, palette.Accent, alpha)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s *tetris.Session) {
	r.drawLabel(screen, "NEXT", panelX, boardY)
	vector.StrokeRect(screen, panelX, boardY+24, previewBox, previewBox, 1, palette.Grid, false)

	shape := s.Next.Shape()
	ox, oy := previewOrigin(shape.Width(), shape.Height())
	for row, cells := range shape {
		for col, filled := range cells {
			if filled {
				r.drawBlock(screen, s.Next.Color(), ox+float64(col*CellSize), oy+float64(row*CellSize), 1)
			}
		}
	}

	y := float64(boardY + 24 + previewBox + 30)
	for _, line := range []struct {
		label string
		value int
	}{
		{"SCORE", s.Score.Points()},
		{"HIGH", s.DisplayHighScore()},
		{"LEVEL", s.Score.Level()},
		{"LINES", s.Score.Lines()},
	} {
		r.drawLabel(screen, line.label, panelX, y)
		r.drawText(screen, fmt.Sprint(line.value), panelX+panelWidth/2, y+20, 2, palette.Text, 1)
		y += 64
	}

	if combo := s.Score.Combo(); combo > 0 {
		r.drawLabel(screen, fmt.Sprintf("COMBO x%d", combo), panelX, y)
		y += 24
	}
	if s.Score.BackToBack() {
		r.drawLabel(screen, "BACK-TO-BACK", panelX, y)
	}
}

func (r *Renderer) drawLevelPause(screen *ebiten.Image, s *tetris.Session) {
	vector.DrawFilledRect(screen, boardX, boardY, boardWidth, boardHeight, palette.Overlay, false)
	cx := float64(boardX + boardWidth/2)
	cy := float64(boardY + boardHeight/2)
	r.drawText(screen, fmt.Sprintf("LEVEL %d", s.Score.Level()), cx, cy-40, 3, palette.Accent, 1)
	r.drawText(screen, "READY?", cx, cy+10, 2, palette.Text, 1)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, s *tetris.Session) {
	vector.DrawFilledRect(screen, boardX, boardY, boardWidth, boardHeight, palette.Overlay, false)
	cx := float64(boardX + boardWidth/2)
	cy := float64(boardY + boardHeight/2)

	r.drawText(screen, "GAME OVER", cx, cy-110, 3, palette.Block(tetris.ColorRed), 1)
	r.drawText(screen, fmt.Sprintf("SCORE %d", s.Score.Points()), cx, cy-50, 2, palette.Text, 1)
	r.drawText(screen, fmt.Sprintf("HIGH %d", s.DisplayHighScore()), cx, cy-20, 2, palette.Text, 1)
	if s.NewHighScore {
		r.drawText(screen, "NEW HIGH SCORE!", cx, cy+15, 2, palette.Accent, 1)
	}

	b := restartButton
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), palette.Block(tetris.ColorDarkGray), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, palette.Text, false)
	r.drawText(screen, "RESTART", float64(b.X+b.W/2), float64(b.Y+b.H/2-13), 2, palette.Text, 1)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, label string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(1.5, 1.5)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(palette.Text)
	text.Draw(screen, label, r.assets.Face, op)
}

// drawText draws s horizontally centered on cx at the given scale.
func (r *Renderer) drawText(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, r.assets.Face, op)
}
