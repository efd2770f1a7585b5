package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	t.Run("prints defaults when the file is missing", func(t *testing.T) {
		out, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)

		cfg, err := config.Parse(out)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("prints overrides", func(t *testing.T) {
		path := writeConfig(t, "[game]\nlines_per_level = 5\nselection = \"bag\"\n")
		out, err := execute(t, "config", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "lines_per_level = 5")
		assert.Contains(t, out, `selection = "bag"`)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeConfig(t, "[game]\nspeed = 3\n")
		_, err := execute(t, "config", "--config", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "game.speed")
	})
}

func TestHighScoreCommand(t *testing.T) {
	dir := t.TempDir()
	scorePath := filepath.Join(dir, "scores", "high_score.txt")
	path := writeConfig(t, "[highscore]\nbackend = \"file\"\npath = \""+filepath.ToSlash(scorePath)+"\"\n")

	out, err := execute(t, "highscore", "show", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))

	require.NoError(t, highscore.NewFileStore(scorePath).Save(context.Background(), 1500))
	out, err = execute(t, "highscore", "show", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "1500", strings.TrimSpace(out))

	_, err = execute(t, "highscore", "reset", "--config", path)
	require.NoError(t, err)
	assert.NoFileExists(t, scorePath)

	require.NoError(t, os.WriteFile(scorePath, []byte("garbage"), 0o644))
	_, err = execute(t, "highscore", "show", "--config", path)
	assert.ErrorIs(t, err, highscore.ErrCorrupt)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--ticks", "600", "--seed", "42", "--input-rate", "0.5",
		"--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Contains(t, out, "**Total Updates:** 600")
	assert.Contains(t, out, "**Seed:** 42")
	for _, system := range []string{"ClockSystem", "InputSystem", "GravitySystem", "LockSystem", "LineClearSystem"} {
		assert.Contains(t, out, "| "+system+" | 600 |")
	}
}

func TestRunBench(t *testing.T) {
	t.Run("tick budget", func(t *testing.T) {
		c := tetris.NewController(tetris.Options{Source: tetris.NewSource(7)})
		report := runBench(context.Background(), c, benchOptions{Ticks: 2000, Step: 16 * time.Millisecond, InputRate: 1, Seed: 7})

		assert.EqualValues(t, 2000, report.TotalUpdates)
		assert.Len(t, report.UpdateTime.Samples, 2000)
		assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.Avg)
		assert.LessOrEqual(t, report.UpdateTime.Avg, report.UpdateTime.Max)
		assert.Equal(t, 32*time.Second, report.Simulated)
		assert.Positive(t, report.Games.Pieces, "hard drops lock pieces")
		assert.Len(t, report.Systems, 5)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := tetris.NewController(tetris.Options{})
		report := runBench(ctx, c, benchOptions{Duration: time.Minute, Step: 16 * time.Millisecond})
		assert.Zero(t, report.TotalUpdates)
	})

	t.Run("report renders", func(t *testing.T) {
		c := tetris.NewController(tetris.Options{})
		report := runBench(context.Background(), c, benchOptions{Ticks: 10, Step: 16 * time.Millisecond, GCPauseMetrics: true})
		var buf bytes.Buffer
		require.NoError(t, report.Generate(&buf))
		assert.Contains(t, buf.String(), "GC Pause Durations")
		assert.Contains(t, buf.String(), "**Finished Games:** 0")
	})
}

func TestGameStats(t *testing.T) {
	var g GameStats
	for _, ev := range []tetris.Event{
		{Kind: tetris.EventPieceLocked},
		{Kind: tetris.EventPieceLocked},
		{Kind: tetris.EventLinesCleared, Lines: 4, AllClear: true},
		{Kind: tetris.EventLinesCleared, Lines: 1},
		{Kind: tetris.EventLevelUp, Level: 2},
		{Kind: tetris.EventGameOver, Score: 1900, Level: 2},
		{Kind: tetris.EventGameOver, Score: 300, Level: 1},
	} {
		g.record(ev)
	}

	assert.Equal(t, GameStats{
		Games:     2,
		Pieces:    2,
		Lines:     5,
		Clears:    [5]int{0, 1, 0, 0, 1},
		AllClears: 1,
		MaxLevel:  2,
		BestScore: 1900,
	}, g)
}

func TestSessionWiring(t *testing.T) {
	dir := t.TempDir()
	store := highscore.NewFileStore(filepath.Join(dir, "high_score.txt"))
	require.NoError(t, store.Save(context.Background(), 2))

	var logs bytes.Buffer
	logger := newLogger(&logs, log.DebugLevel)

	g := &globals{cfg: config.Default()}

	c := newController(context.Background(), g, store, logger)
	assert.Equal(t, 2, c.Session().HighScore)
	assert.Contains(t, logs.String(), "session started")

	t.Run("saver ignores games without a new high score", func(t *testing.T) {
		saver := &highScoreSaver{ctx: context.Background(), store: store, logger: logger}
		saver.HandleEvent(tetris.Event{Kind: tetris.EventGameOver, Score: 1, HighScore: 2})
		saver.HandleEvent(tetris.Event{Kind: tetris.EventLinesCleared, HighScore: 99, NewHighScore: true})

		score, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, score)
	})

	t.Run("saver persists a new high score", func(t *testing.T) {
		saver := &highScoreSaver{ctx: context.Background(), store: store, logger: logger}
		saver.HandleEvent(tetris.Event{Kind: tetris.EventGameOver, Score: 800, HighScore: 800, NewHighScore: true})

		score, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 800, score)
	})

	t.Run("event logger", func(t *testing.T) {
		logs.Reset()
		l := eventLogger(logger)
		l.HandleEvent(tetris.Event{Kind: tetris.EventLinesCleared, SessionID: "s1", Lines: 2, Points: 300})
		l.HandleEvent(tetris.Event{Kind: tetris.EventGameOverSettled, SessionID: "s1"})
		assert.Contains(t, logs.String(), "lines cleared")
		assert.Contains(t, logs.String(), "game-over-settled")
		assert.Contains(t, logs.String(), "s1")
	})

	t.Run("unavailable store falls back to null", func(t *testing.T) {
		cfg := config.Default()
		cfg.HighScore.Backend = "redis"
		cfg.HighScore.RedisURL = "not a url"
		assert.IsType(t, &highscore.NullStore{}, openStore(cfg, logger))
	})
}
