package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

var cues = map[tetris.EventKind][]tone{
	tetris.EventPieceLocked: {{196, 40 * time.Millisecond}},
	tetris.EventLevelUp:     {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 160 * time.Millisecond}},
	tetris.EventGameOver:    {{392, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
}

// clearTones returns one rising note per cleared line.
func clearTones(lines int) []tone {
	steps := []float64{440, 554.37, 659.25, 880}
	var out []tone
	for i := range min(lines, len(steps)) {
		out = append(out, tone{steps[i], 70 * time.Millisecond})
	}
	return out
}

// Sound plays sine cues through the system speaker. It is registered as a tetris.Listener.
type Sound struct {
	volume float64
	logger *log.Logger
}

// NewSound initializes the speaker. Callers treat an error as "no audio".
func NewSound(volume float64, logger *log.Logger) (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Sound{volume: volume, logger: logger}, nil
}

func (s *Sound) HandleEvent(ev tetris.Event) {
	var tones []tone
	switch ev.Kind {
	case tetris.EventLinesCleared:
		tones = clearTones(ev.Lines)
	default:
		tones = cues[ev.Kind]
	}
	if len(tones) == 0 {
		return
	}
	stream, err := s.sequence(tones)
	if err != nil {
		s.logger.Warn("building sound cue", "event", ev.Kind, "err", err)
		return
	}
	speaker.Play(stream)
}

func (s *Sound) sequence(tones []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   gainToVolume(s.volume),
		Silent:   s.volume <= 0,
	}, nil
}

// Close stops playback and releases the speaker.
func (s *Sound) Close() {
	speaker.Clear()
	speaker.Close()
}

// gainToVolume converts a linear gain to the base-2 exponent used by effects.Volume.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
