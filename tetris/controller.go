package tetris

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/plus3/blockfall/engine"
)

// Options configure a Controller. Zero fields fall back to DefaultOptions.
type Options struct {
	Width         int
	Height        int
	LinesPerLevel int
	Timing        Timing
	Selection     Selection
	Source        Source
	// HighScore seeds the first session's high score.
	HighScore int
	Listeners []Listener
	// NewID generates session ids. Defaults to uuid.NewString.
	NewID func() string
}

// DefaultOptions returns a standard 10x20 game with uniform selection.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		LinesPerLevel: DefaultLinesPerLevel,
		Timing:        DefaultTiming(),
		Selection:     SelectUniform,
		NewID:         uuid.NewString,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.LinesPerLevel <= 0 {
		o.LinesPerLevel = def.LinesPerLevel
	}
	if o.Timing == (Timing{}) {
		o.Timing = def.Timing
	}
	if o.Selection == "" {
		o.Selection = def.Selection
	}
	if o.NewID == nil {
		o.NewID = def.NewID
	}
	return o
}

// Controller owns the current Session and steps it one frame at a time through the
// clock, input, gravity, lock and line-clear systems.
type Controller struct {
	opts      Options
	timing    Timing
	factory   *Factory
	scheduler *engine.Scheduler[*Session]
	session   *Session
	listeners []Listener
	pending   []Intent
}

// NewController creates a controller with a fresh session.
func NewController(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:      opts,
		timing:    opts.Timing,
		factory:   NewFactory(opts.Source, opts.Selection, opts.Width),
		scheduler: engine.NewScheduler[*Session](),
		listeners: slices.Clone(opts.Listeners),
	}
	c.scheduler.Register(&ClockSystem{c: c})
	c.scheduler.Register(&InputSystem{c: c})
	c.scheduler.Register(&GravitySystem{c: c})
	c.scheduler.Register(&LockSystem{c: c})
	c.scheduler.Register(&LineClearSystem{c: c})
	c.session = c.newSession(opts.HighScore)
	return c
}

// Session returns the current session. It is replaced on restart.
func (c *Controller) Session() *Session { return c.session }

// Timing returns the pacing in use.
func (c *Controller) Timing() Timing { return c.timing }

// FallDelay returns the gravity interval at the current level.
func (c *Controller) FallDelay() time.Duration {
	return c.timing.FallDelay(c.session.Score.Level())
}

// Stats returns per-system execution timings.
func (c *Controller) Stats() *engine.SchedulerStats { return c.scheduler.GetStats() }

// AddListener registers an event observer.
func (c *Controller) AddListener(l Listener) {
	if l == nil {
		panic("tetris: nil listener")
	}
	c.listeners = append(c.listeners, l)
}

// Tick advances the simulation by dt, applying intents in order. Movement intents only take
// effect while a piece is falling; a restart intent only takes effect after game over.
func (c *Controller) Tick(dt time.Duration, intents ...Intent) {
	if c.session.IsGameOver() && slices.Contains(intents, IntentRestart) {
		c.Restart()
		intents = nil
	}
	c.pending = append(c.pending[:0], intents...)
	c.scheduler.Once(c.session, dt)
	c.pending = c.pending[:0]
}

// Restart replaces the session with a fresh one, keeping the high score. The score of a
// game abandoned before game over does not count towards it.
func (c *Controller) Restart() {
	high := c.session.HighScore
	c.session = c.newSession(high)
	c.publish(Event{Kind: EventRestarted, SessionID: c.session.ID, HighScore: high})
}

func (c *Controller) newSession(highScore int) *Session {
	return &Session{
		ID:        c.opts.NewID(),
		Board:     NewBoard(c.opts.Width, c.opts.Height),
		Current:   c.factory.Next(),
		Next:      c.factory.Next(),
		Score:     NewScore(c.opts.LinesPerLevel),
		State:     StateFalling,
		HighScore: highScore,
	}
}

func (c *Controller) gameOver(frame *engine.UpdateFrame[*Session]) {
	s := frame.State
	s.State = StateGameOver
	s.GameOverAt = s.Now
	s.GameOverUntil = s.Now + c.timing.GameOverDelay
	if s.Score.Points() > s.HighScore {
		s.HighScore = s.Score.Points()
		s.NewHighScore = true
	}
	c.emit(frame, Event{
		Kind:         EventGameOver,
		Level:        s.Score.Level(),
		Score:        s.Score.Points(),
		HighScore:    s.HighScore,
		NewHighScore: s.NewHighScore,
	})
}

// emit queues an event for delivery once the frame's systems have all run.
func (c *Controller) emit(frame *engine.UpdateFrame[*Session], ev Event) {
	ev.SessionID = frame.State.ID
	frame.Commands.Defer(func() { c.publish(ev) })
}

func (c *Controller) publish(ev Event) {
	for _, l := range c.listeners {
		l.HandleEvent(ev)
	}
}
