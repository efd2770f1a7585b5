package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui/debugui"
)

const title = "Blockfall"

// Options configures the window front-end.
type Options struct {
	Controller     *tetris.Controller
	TPS            int
	Scale          float64
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	Debug          bool
	Audio          bool
	Volume         float64
	Logger         *log.Logger
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("ui: controller is required")
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	width, height := int(ScreenWidth*opts.Scale), int(ScreenHeight*opts.Scale)
	ebiten.SetTPS(opts.TPS)

	var overlay *debugui.Overlay
	if opts.Debug {
		width, height = width+320, max(height, 640)
		overlay = debugui.New(title, width, height)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	renderer := NewRenderer(NewAssets(CellSize), opts.Controller.Timing())
	keyboard := NewKeyboard(opts.TPS, opts.RepeatDelay, opts.RepeatInterval)
	game := NewGame(opts.Controller, keyboard, renderer, opts.TPS, overlay)

	if overlay != nil {
		overlay.Add(debugui.NewPerformanceStats(240, opts.Controller.Stats).Render)
		overlay.Add(debugui.NewSessionInspector(opts.Controller).Render)
		overlay.Add(game.Control().Window())
	}

	if opts.Audio {
		sound := NewSound(opts.Volume, logger)
		defer sound.Close()
		opts.Controller.AddListener(sound)
		sound.Start()
	}

	logger.Info("starting window", "tps", opts.TPS, "width", width, "height", height, "debug", opts.Debug)
	return ebiten.RunGame(game)
}
