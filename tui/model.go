// Package tui is the terminal front-end. A bubbletea program ticks the controller at a fixed
// rate and renders the session with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/tetris"
)

// maxFrame caps the simulated time of one tick after the terminal stalls.
const maxFrame = 250 * time.Millisecond

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model wrapping a tetris.Controller.
type Model struct {
	controller *tetris.Controller
	keys       keyMap
	styles     styles
	interval   time.Duration
	last       time.Time
	pending    []tetris.Intent

	// Terminals report a held key as repeated presses. Rotate and hard drop presses
	// arriving within repeatDelay of the previous identical press are dropped.
	repeatDelay time.Duration
	lastPress   map[tetris.Intent]time.Time
	now         func() time.Time
}

// NewModel creates a model ticking controller tps times per second.
func NewModel(controller *tetris.Controller, tps int, repeatDelay time.Duration) Model {
	if tps <= 0 {
		tps = 30
	}
	return Model{
		controller:  controller,
		keys:        defaultKeyMap(),
		styles:      newStyles(),
		interval:    time.Second / time.Duration(tps),
		repeatDelay: repeatDelay,
		lastPress:   make(map[tetris.Intent]time.Time),
		now:         time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.step(time.Time(msg))
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		intent, ok := m.keys.intent(msg)
		if !ok {
			return m, nil
		}
		if intent == tetris.IntentQuit {
			return m, tea.Quit
		}
		if m.repeated(intent) {
			return m, nil
		}
		m.pending = append(m.pending, intent)
	}
	return m, nil
}

// repeated reports whether a rotate or hard drop press is an auto-repeat of a held key.
func (m Model) repeated(intent tetris.Intent) bool {
	if intent != tetris.IntentRotate && intent != tetris.IntentHardDrop {
		return false
	}
	now := m.now()
	prev, seen := m.lastPress[intent]
	m.lastPress[intent] = now
	return seen && now.Sub(prev) < m.repeatDelay
}

// step advances the controller by the wall time since the previous tick, applying the
// intents collected from key presses in between.
func (m *Model) step(now time.Time) {
	dt := m.interval
	if !m.last.IsZero() {
		dt = min(max(now.Sub(m.last), 0), maxFrame)
	}
	m.last = now
	m.controller.Tick(dt, m.pending...)
	m.pending = nil
}

func (m Model) View() string {
	return m.render(m.controller.Session())
}
