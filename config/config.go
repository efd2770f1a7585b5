// Package config loads the blockfall TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

// Config is the complete runtime configuration.
type Config struct {
	Game      Game      `toml:"game"`
	Timing    Timing    `toml:"timing"`
	Input     Input     `toml:"input"`
	HighScore HighScore `toml:"highscore"`
	Display   Display   `toml:"display"`
	Audio     Audio     `toml:"audio"`
	Log       Log       `toml:"log"`
}

type Game struct {
	LinesPerLevel int    `toml:"lines_per_level"`
	Selection     string `toml:"selection"`
	// Seed for piece selection; 0 picks a random seed.
	Seed uint64 `toml:"seed"`
}

// Timing values are milliseconds.
type Timing struct {
	BaseFallDelayMS int `toml:"base_fall_delay_ms"`
	FallStepMS      int `toml:"fall_step_ms"`
	MinFallDelayMS  int `toml:"min_fall_delay_ms"`
	LevelPauseMS    int `toml:"level_pause_ms"`
	GameOverDelayMS int `toml:"game_over_delay_ms"`
	FlashMS         int `toml:"flash_ms"`
	BonusMS         int `toml:"bonus_ms"`
}

// Input configures key repeat for held movement keys, in milliseconds.
type Input struct {
	RepeatDelayMS    int `toml:"repeat_delay_ms"`
	RepeatIntervalMS int `toml:"repeat_interval_ms"`
}

type HighScore struct {
	Backend  string `toml:"backend"`
	Path     string `toml:"path"`
	RedisURL string `toml:"redis_url"`
	RedisKey string `toml:"redis_key"`
}

type Display struct {
	Scale float64 `toml:"scale"`
	TPS   int     `toml:"tps"`
	Debug bool    `toml:"debug"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	timing := tetris.DefaultTiming()
	redis := highscore.DefaultRedisConfig()
	return Config{
		Game: Game{
			LinesPerLevel: tetris.DefaultLinesPerLevel,
			Selection:     string(tetris.SelectUniform),
		},
		Timing: Timing{
			BaseFallDelayMS: ms(timing.BaseFallDelay),
			FallStepMS:      ms(timing.FallDelayStep),
			MinFallDelayMS:  ms(timing.MinFallDelay),
			LevelPauseMS:    ms(timing.LevelPause),
			GameOverDelayMS: ms(timing.GameOverDelay),
			FlashMS:         ms(timing.Flash),
			BonusMS:         ms(timing.Bonus),
		},
		Input: Input{
			RepeatDelayMS:    220,
			RepeatIntervalMS: 90,
		},
		HighScore: HighScore{
			Backend:  string(highscore.BackendFile),
			Path:     highscore.DefaultPath,
			RedisURL: redis.URL,
			RedisKey: redis.Key,
		},
		Display: Display{
			Scale: 1,
			TPS:   60,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults. An empty path or a missing file yields
// the defaults. Keys the configuration does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Game.LinesPerLevel <= 0 {
		return fmt.Errorf("game.lines_per_level must be positive, got %d", c.Game.LinesPerLevel)
	}
	if _, err := tetris.ParseSelection(c.Game.Selection); err != nil {
		return fmt.Errorf("game.selection: %w", err)
	}
	for _, field := range []struct {
		name  string
		value int
	}{
		{"timing.base_fall_delay_ms", c.Timing.BaseFallDelayMS},
		{"timing.fall_step_ms", c.Timing.FallStepMS},
		{"timing.min_fall_delay_ms", c.Timing.MinFallDelayMS},
		{"timing.level_pause_ms", c.Timing.LevelPauseMS},
		{"timing.game_over_delay_ms", c.Timing.GameOverDelayMS},
		{"timing.flash_ms", c.Timing.FlashMS},
		{"timing.bonus_ms", c.Timing.BonusMS},
		{"input.repeat_delay_ms", c.Input.RepeatDelayMS},
		{"input.repeat_interval_ms", c.Input.RepeatIntervalMS},
	} {
		if field.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", field.name, field.value)
		}
	}
	if c.Timing.MinFallDelayMS == 0 {
		return errors.New("timing.min_fall_delay_ms must be positive")
	}
	if c.Input.RepeatIntervalMS == 0 {
		return errors.New("input.repeat_interval_ms must be positive")
	}
	if _, err := highscore.ParseBackend(c.HighScore.Backend); err != nil {
		return fmt.Errorf("highscore.backend: %w", err)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("display.tps must be positive, got %d", c.Display.TPS)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display.scale must be positive, got %g", c.Display.Scale)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// TetrisTiming converts the timing section.
func (c Config) TetrisTiming() tetris.Timing {
	t := c.Timing
	return tetris.Timing{
		BaseFallDelay: msDuration(t.BaseFallDelayMS),
		FallDelayStep: msDuration(t.FallStepMS),
		MinFallDelay:  msDuration(t.MinFallDelayMS),
		LevelPause:    msDuration(t.LevelPauseMS),
		GameOverDelay: msDuration(t.GameOverDelayMS),
		Flash:         msDuration(t.FlashMS),
		Bonus:         msDuration(t.BonusMS),
	}
}

// TetrisOptions builds controller options from the game and timing sections. The seed
// argument overrides game.seed when non-zero.
func (c Config) TetrisOptions(seed uint64, high int) tetris.Options {
	if seed == 0 {
		seed = c.Game.Seed
	}
	selection, _ := tetris.ParseSelection(c.Game.Selection)
	opts := tetris.DefaultOptions()
	opts.LinesPerLevel = c.Game.LinesPerLevel
	opts.Timing = c.TetrisTiming()
	opts.Selection = selection
	opts.Source = tetris.NewSource(seed)
	opts.HighScore = high
	return opts
}

// RepeatDelay returns the hold time before a key starts repeating.
func (c Config) RepeatDelay() time.Duration { return msDuration(c.Input.RepeatDelayMS) }

// RepeatInterval returns the time between repeats of a held key.
func (c Config) RepeatInterval() time.Duration { return msDuration(c.Input.RepeatIntervalMS) }

// HighScoreOptions returns the store selection.
func (c Config) HighScoreOptions() highscore.Options {
	backend, _ := highscore.ParseBackend(c.HighScore.Backend)
	redis := highscore.DefaultRedisConfig()
	redis.URL = c.HighScore.RedisURL
	redis.Key = c.HighScore.RedisKey
	return highscore.Options{
		Backend: backend,
		Path:    c.HighScore.Path,
		Redis:   redis,
	}
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func ms(d time.Duration) int { return int(d / time.Millisecond) }

func msDuration(v int) time.Duration { return time.Duration(v) * time.Millisecond }
