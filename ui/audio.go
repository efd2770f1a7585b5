package ui

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/blockfall/tetris"
)

const sampleRate = 44100

// note is a single generated tone.
type note struct {
	freq float64
	dur  time.Duration
}

// Short cues, one per event kind.
var (
	lockCue     = []note{{196, 40 * time.Millisecond}}
	levelUpCue  = []note{{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 160 * time.Millisecond}}
	gameOverCue = []note{{392, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {261.63, 400 * time.Millisecond}}
	clearCues   = [...][]note{
		1: {{440, 80 * time.Millisecond}},
		2: {{440, 70 * time.Millisecond}, {554.37, 90 * time.Millisecond}},
		3: {{440, 60 * time.Millisecond}, {554.37, 60 * time.Millisecond}, {659.25, 100 * time.Millisecond}},
		4: {{440, 60 * time.Millisecond}, {554.37, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {880, 200 * time.Millisecond}},
	}
	bgmMelody = []note{
		{329.63, 200 * time.Millisecond}, {246.94, 100 * time.Millisecond}, {261.63, 100 * time.Millisecond},
		{293.66, 200 * time.Millisecond}, {261.63, 100 * time.Millisecond}, {246.94, 100 * time.Millisecond},
		{220, 200 * time.Millisecond}, {220, 100 * time.Millisecond}, {261.63, 100 * time.Millisecond},
		{329.63, 200 * time.Millisecond}, {293.66, 100 * time.Millisecond}, {261.63, 100 * time.Millisecond},
		{246.94, 300 * time.Millisecond}, {261.63, 100 * time.Millisecond}, {293.66, 200 * time.Millisecond},
		{329.63, 200 * time.Millisecond}, {261.63, 200 * time.Millisecond}, {220, 400 * time.Millisecond},
	}
)

// Sound plays generated cues for game events. It is registered as a tetris.Listener.
type Sound struct {
	ctx    *audio.Context
	volume float64
	cues   map[tetris.EventKind][]byte
	clears [len(clearCues)][]byte
	bgm    *audio.Player
	logger *log.Logger
}

// NewSound creates the audio context and renders every cue up front.
func NewSound(volume float64, logger *log.Logger) *Sound {
	s := &Sound{
		ctx:    audio.NewContext(sampleRate),
		volume: volume,
		logger: logger,
		cues: map[tetris.EventKind][]byte{
			tetris.EventPieceLocked: render(lockCue, 0.5),
			tetris.EventLevelUp:     render(levelUpCue, 0.8),
			tetris.EventGameOver:    render(gameOverCue, 0.8),
		},
	}
	for n := 1; n < len(clearCues); n++ {
		s.clears[n] = render(clearCues[n], 0.8)
	}

	loop := render(bgmMelody, 0.25)
	bgm, err := s.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(loop), int64(len(loop))))
	if err != nil {
		logger.Warn("background music unavailable", "err", err)
		return s
	}
	bgm.SetVolume(volume)
	s.bgm = bgm
	return s
}

// Start begins the background music.
func (s *Sound) Start() {
	if s.bgm != nil {
		s.bgm.Play()
	}
}

// HandleEvent plays the cue for ev and drives the background music.
func (s *Sound) HandleEvent(ev tetris.Event) {
	switch ev.Kind {
	case tetris.EventLinesCleared:
		if ev.Lines > 0 && ev.Lines < len(s.clears) {
			s.play(s.clears[ev.Lines])
		}
	case tetris.EventGameOverSettled:
		if s.bgm != nil {
			s.bgm.Pause()
		}
	case tetris.EventRestarted:
		if s.bgm != nil {
			if err := s.bgm.Rewind(); err != nil {
				s.logger.Warn("rewinding background music", "err", err)
			}
			s.bgm.Play()
		}
	default:
		if pcm, ok := s.cues[ev.Kind]; ok {
			s.play(pcm)
		}
	}
}

func (s *Sound) play(pcm []byte) {
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
}

// Close stops the background music.
func (s *Sound) Close() error {
	if s.bgm == nil {
		return nil
	}
	return s.bgm.Close()
}

// render concatenates notes into 16-bit little-endian stereo PCM.
func render(notes []note, gain float64) []byte {
	var buf []byte
	for _, n := range notes {
		buf = append(buf, tone(n.freq, n.dur, gain)...)
	}
	return buf
}

// tone renders a sine tone with a linear release.
func tone(freq float64, dur time.Duration, gain float64) []byte {
	samples := int(float64(sampleRate) * dur.Seconds())
	buf := make([]byte, samples*4)
	release := max(samples/5, 1)
	for i := range samples {
		env := 1.0
		if left := samples - i; left < release {
			env = float64(left) / float64(release)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * gain * env
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
