package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"
)

type styles struct {
	blocks map[tetris.ColorTag]lipgloss.Style
	empty  lipgloss.Style
	board  lipgloss.Style
	panel  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	alert  lipgloss.Style
	help   lipgloss.Style
}

func newStyles() styles {
	s := styles{
		blocks: make(map[tetris.ColorTag]lipgloss.Style),
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Grid))),
		board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(palette.Hex(palette.Block(tetris.ColorGray)))),
		panel:  lipgloss.NewStyle().PaddingLeft(2),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Block(tetris.ColorGray)))).Bold(true),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Text))),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Accent))).Bold(true),
		alert:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Block(tetris.ColorRed)))).Bold(true),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Block(tetris.ColorDarkGray)))),
	}
	for _, tag := range tetris.Colors() {
		s.blocks[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Block(tag))))
	}
	return s
}

type cell struct {
	color tetris.ColorTag
	ghost bool
}

// grid composes the locked cells, ghost and current piece into one frame.
func grid(s *tetris.Session) [][]cell {
	b := s.Board
	out := make([][]cell, b.Height())
	for y := range out {
		out[y] = make([]cell, b.Width())
		for x := range out[y] {
			out[y][x] = cell{color: b.At(x, y)}
		}
	}
	if s.IsGameOver() {
		return out
	}

	put := func(x, y int, c cell) {
		if y >= 0 && y < len(out) && x >= 0 && x < len(out[y]) {
			out[y][x] = c
		}
	}
	if s.State.AcceptsInput() {
		gx, gy := s.Ghost()
		cx, cy := s.Current.Position()
		for _, c := range s.Current.Cells() {
			x, y := c.X+gx-cx, c.Y+gy-cy
			if y >= 0 && !b.Occupied(x, y) {
				put(x, y, cell{color: c.Color, ghost: true})
			}
		}
	}
	for _, c := range s.Current.Cells() {
		put(c.X, c.Y, cell{color: c.Color})
	}
	return out
}

func (m Model) render(s *tetris.Session) string {
	board := m.styles.board.Render(m.renderBoard(s))
	panel := m.styles.panel.Render(m.renderPanel(s))
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)
	if status := m.renderStatus(s); status != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, status)
	}
	return view
}

func (m Model) renderBoard(s *tetris.Session) string {
	rows := grid(s)
	lines := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(m.renderCell(c))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCell(c cell) string {
	style, ok := m.styles.blocks[c.color]
	switch {
	case !ok:
		return m.styles.empty.Render(emptyGlyph)
	case c.ghost:
		return style.Render(ghostGlyph)
	default:
		return style.Render(blockGlyph)
	}
}

func (m Model) renderPanel(s *tetris.Session) string {
	var lines []string
	lines = append(lines, m.styles.label.Render("NEXT"))
	shape := s.Next.Shape()
	style := m.styles.blocks[s.Next.Color()]
	for _, row := range shape {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteString(style.Render(blockGlyph))
			} else {
				sb.WriteString("  ")
			}
		}
		lines = append(lines, sb.String())
	}
	for range 4 - shape.Height() {
		lines = append(lines, "")
	}

	stat := func(label string, value int) {
		lines = append(lines, m.styles.label.Render(label), m.styles.value.Render(fmt.Sprint(value)), "")
	}
	stat("SCORE", s.Score.Points())
	stat("HIGH", s.DisplayHighScore())
	stat("LEVEL", s.Score.Level())
	stat("LINES", s.Score.Lines())

	if combo := s.Score.Combo(); combo > 0 {
		lines = append(lines, m.styles.accent.Render(fmt.Sprintf("COMBO x%d", combo)))
	}
	if s.Score.BackToBack() {
		lines = append(lines, m.styles.accent.Render("BACK-TO-BACK"))
	}
	if fx := s.Effects; fx.Bonus > 0 && fx.BonusPoints > 0 {
		lines = append(lines, m.styles.accent.Render(fmt.Sprintf("+%d", fx.BonusPoints)))
	}

	lines = append(lines, "")
	for _, h := range m.keys.help() {
		lines = append(lines, m.styles.help.Render(h))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus(s *tetris.Session) string {
	switch {
	case s.IsGameOver():
		parts := []string{
			m.styles.alert.Render("GAME OVER"),
			m.styles.value.Render(fmt.Sprintf("score %d  high %d", s.Score.Points(), s.DisplayHighScore())),
		}
		if s.NewHighScore {
			parts = append(parts, m.styles.accent.Render("NEW HIGH SCORE!"))
		}
		parts = append(parts, m.styles.help.Render("press r to restart"))
		return strings.Join(parts, "  ")
	case s.IsPaused():
		return m.styles.accent.Render(fmt.Sprintf("LEVEL %d", s.Score.Level())) + "  " +
			m.styles.value.Render("READY?")
	}
	return ""
}
