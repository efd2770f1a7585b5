package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/tetris"
)

type binding struct {
	intent tetris.Intent
	keys   []ebiten.Key
}

// Held movement keys auto-repeat.
var repeatBindings = []binding{
	{tetris.IntentMoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{tetris.IntentMoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{tetris.IntentSoftDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

var pressBindings = []binding{
	{tetris.IntentRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}},
	{tetris.IntentHardDrop, []ebiten.Key{ebiten.KeySpace}},
	{tetris.IntentRestart, []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}},
	{tetris.IntentQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// Keyboard turns ebiten key state into intents once per tick.
type Keyboard struct {
	tick     time.Duration
	delay    time.Duration
	interval time.Duration
}

// NewKeyboard creates a keyboard for the given tick rate and key repeat timings.
func NewKeyboard(tps int, delay, interval time.Duration) *Keyboard {
	return &Keyboard{
		tick:     time.Second / time.Duration(tps),
		delay:    delay,
		interval: interval,
	}
}

// Intents returns the intents triggered during the current tick.
func (k *Keyboard) Intents() []tetris.Intent {
	var intents []tetris.Intent
	for _, b := range repeatBindings {
		ticks := 0
		for _, key := range b.keys {
			ticks = max(ticks, inpututil.KeyPressDuration(key))
		}
		if repeatFires(ticks, k.tick, k.delay, k.interval) {
			intents = append(intents, b.intent)
		}
	}
	for _, b := range pressBindings {
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) {
				intents = append(intents, b.intent)
				break
			}
		}
	}
	return intents
}

// repeatFires reports whether a key held for the given number of ticks fires this tick: on
// the first tick, then once the delay has passed, every interval.
func repeatFires(ticks int, tick, delay, interval time.Duration) bool {
	switch {
	case ticks <= 0:
		return false
	case ticks == 1:
		return true
	}
	if interval <= 0 {
		return true
	}
	held := time.Duration(ticks-1) * tick
	prev := held - tick
	if held < delay {
		return false
	}
	if prev < delay {
		return true
	}
	return (held-delay)/interval != (prev-delay)/interval
}
