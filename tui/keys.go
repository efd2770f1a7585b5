package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/tetris"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	SoftDrop key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		SoftDrop: key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "soft drop")),
		Rotate:   key.NewBinding(key.WithKeys("up", "w", "x", "k"), key.WithHelp("↑/w", "rotate")),
		HardDrop: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop")),
		Restart:  key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type keyIntent struct {
	binding key.Binding
	intent  tetris.Intent
}

func (k keyMap) bindings() []keyIntent {
	return []keyIntent{
		{k.Left, tetris.IntentMoveLeft},
		{k.Right, tetris.IntentMoveRight},
		{k.SoftDrop, tetris.IntentSoftDrop},
		{k.Rotate, tetris.IntentRotate},
		{k.HardDrop, tetris.IntentHardDrop},
		{k.Restart, tetris.IntentRestart},
		{k.Quit, tetris.IntentQuit},
	}
}

// intent maps a key press to an intent.
func (k keyMap) intent(msg tea.KeyMsg) (tetris.Intent, bool) {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.intent, true
		}
	}
	return 0, false
}

// help renders the short key legend.
func (k keyMap) help() []string {
	var lines []string
	for _, b := range k.bindings() {
		h := b.binding.Help()
		lines = append(lines, h.Key+" "+h.Desc)
	}
	return lines
}
