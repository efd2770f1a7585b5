package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/plus3/blockfall/tetris"
)

// Options configures the terminal front-end.
type Options struct {
	Controller  *tetris.Controller
	TPS         int
	// RepeatDelay is the minimum gap between two rotate or hard drop presses.
	RepeatDelay time.Duration
	Audio       bool
	Volume      float64
	Logger      *log.Logger
}

// Run takes over the terminal until the player quits.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("tui: controller is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if opts.Audio {
		sound, err := NewSound(opts.Volume, logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sound.Close()
			opts.Controller.AddListener(sound)
		}
	}

	p := tea.NewProgram(NewModel(opts.Controller, opts.TPS, opts.RepeatDelay), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
