package ui

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui/debugui"
)

// Game implements ebiten.Game on top of a tetris.Controller.
type Game struct {
	controller *tetris.Controller
	keyboard   *Keyboard
	renderer   *Renderer
	tick       time.Duration

	debug   *debugui.Overlay
	control debugui.Control
}

// NewGame creates a game stepping controller by one tick per ebiten update. debug may be nil.
func NewGame(controller *tetris.Controller, keyboard *Keyboard, renderer *Renderer, tps int, debug *debugui.Overlay) *Game {
	return &Game{
		controller: controller,
		keyboard:   keyboard,
		renderer:   renderer,
		tick:       time.Second / time.Duration(tps),
		debug:      debug,
	}
}

// Control returns the debug pause/step state.
func (g *Game) Control() *debugui.Control { return &g.control }

func (g *Game) Update() error {
	if g.debug != nil {
		g.debug.BeginFrame()
		defer g.debug.EndFrame()
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			g.debug.Toggle()
		}
	}

	intents := g.intents()
	if slices.Contains(intents, tetris.IntentQuit) {
		return ebiten.Termination
	}
	if g.control.Advance(g.tick) {
		g.controller.Tick(g.tick, intents...)
	}
	return nil
}

func (g *Game) intents() []tetris.Intent {
	var intents []tetris.Intent
	if g.debug == nil || !g.debug.WantsKeyboard() {
		intents = g.keyboard.Intents()
	}
	if g.controller.Session().IsGameOver() && g.restartClicked() {
		intents = append(intents, tetris.IntentRestart)
	}
	return intents
}

func (g *Game) restartClicked() bool {
	if g.debug != nil && g.debug.WantsMouse() {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return restartButton.Contains(ebiten.CursorPosition())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.controller.Session())
	if g.debug != nil {
		g.debug.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug != nil {
		g.debug.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
