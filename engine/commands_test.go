package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

type emitSystem struct {
	events []string
}

func (s *emitSystem) Execute(frame *engine.UpdateFrame[*[]string]) {
	for _, ev := range s.events {
		frame.Commands.Defer(func() {
			*frame.State = append(*frame.State, ev)
		})
	}
}

type countingSystem struct {
	queued int
}

func (s *countingSystem) Execute(frame *engine.UpdateFrame[*[]string]) {
	s.queued = frame.Commands.Len()
}

func TestCommandsDeferOrder(t *testing.T) {
	scheduler := engine.NewScheduler[*[]string]()
	scheduler.Register(&emitSystem{events: []string{"locked", "cleared"}})
	scheduler.Register(&emitSystem{events: []string{"game-over"}})

	var delivered []string
	scheduler.Once(&delivered, time.Millisecond)

	assert.Equal(t, []string{"locked", "cleared", "game-over"}, delivered)
}

func TestCommandsFlushedEachFrame(t *testing.T) {
	scheduler := engine.NewScheduler[*[]string]()
	emit := &emitSystem{events: []string{"a"}}
	count := &countingSystem{}
	scheduler.Register(emit)
	scheduler.Register(count)

	var delivered []string
	scheduler.Once(&delivered, time.Millisecond)
	assert.Equal(t, 1, count.queued)

	scheduler.Once(&delivered, time.Millisecond)
	assert.Equal(t, 1, count.queued, "buffer should be reset between frames")
	assert.Equal(t, []string{"a", "a"}, delivered)
}

func TestCommandsDeferNil(t *testing.T) {
	scheduler := engine.NewScheduler[*[]string]()
	count := &countingSystem{}
	scheduler.Register(engine.SystemFunc[*[]string](func(frame *engine.UpdateFrame[*[]string]) {
		frame.Commands.Defer(nil)
	}))
	scheduler.Register(count)

	var delivered []string
	assert.NotPanics(t, func() { scheduler.Once(&delivered, time.Millisecond) })
	assert.Equal(t, 0, count.queued)
}

func TestCommandsDeferDuringFlush(t *testing.T) {
	scheduler := engine.NewScheduler[*[]string]()
	scheduler.Register(engine.SystemFunc[*[]string](func(frame *engine.UpdateFrame[*[]string]) {
		frame.Commands.Defer(func() {
			*frame.State = append(*frame.State, "outer")
			frame.Commands.Defer(func() {
				*frame.State = append(*frame.State, "inner")
			})
		})
	}))

	var delivered []string
	scheduler.Once(&delivered, time.Millisecond)

	assert.Equal(t, []string{"outer", "inner"}, delivered)
}

func TestRegisterNilPanics(t *testing.T) {
	scheduler := engine.NewScheduler[*[]string]()
	assert.Panics(t, func() { scheduler.Register(nil) })
}
