package highscore_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/highscore"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads zero", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "high_score.txt"))
		score, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores", "high_score.txt")
		store := highscore.NewFileStore(path)

		require.NoError(t, store.Save(ctx, 1234))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1234", string(data))

		require.NoError(t, store.Save(ctx, 99))
		score, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 99, score)
	})

	t.Run("surrounding whitespace is accepted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "high_score.txt")
		require.NoError(t, os.WriteFile(path, []byte(" 42\n"), 0644))

		score, err := highscore.NewFileStore(path).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, score)
	})

	t.Run("corrupt content", func(t *testing.T) {
		for _, content := range []string{"abc", "", "-5", "12.5"} {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := highscore.NewFileStore(path).Load(ctx)
			assert.ErrorIs(t, err, highscore.ErrCorrupt, "content %q", content)
		}
	})

	t.Run("negative score is rejected", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "high_score.txt"))
		assert.Error(t, store.Save(ctx, -1))
	})

	t.Run("reset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "high_score.txt")
		store := highscore.NewFileStore(path)
		require.NoError(t, store.Save(ctx, 10))
		require.NoError(t, store.Reset(ctx))
		require.NoError(t, store.Reset(ctx), "reset of a missing file")

		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, highscore.DefaultPath, highscore.NewFileStore("").Path())
	})
}

func TestBestEffort(t *testing.T) {
	ctx := context.Background()
	logger := log.New(io.Discard)

	t.Run("corrupt file loads zero", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "high_score.txt")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

		assert.Equal(t, 0, highscore.LoadOrZero(ctx, highscore.NewFileStore(path), logger))
	})

	t.Run("unreadable path loads zero", func(t *testing.T) {
		// a directory cannot be read as a file
		assert.Equal(t, 0, highscore.LoadOrZero(ctx, highscore.NewFileStore(t.TempDir()), logger))
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		dir := t.TempDir()
		store := highscore.NewFileStore(dir)
		assert.NotPanics(t, func() {
			highscore.SaveOrWarn(ctx, store, 500, logger)
		})
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("valid file", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "high_score.txt"))
		highscore.SaveOrWarn(ctx, store, 700, logger)
		assert.Equal(t, 700, highscore.LoadOrZero(ctx, store, logger))
	})
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	store := highscore.NewNullStore()

	require.NoError(t, store.Save(ctx, 100))
	score, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.NoError(t, store.Reset(ctx))
	assert.NoError(t, store.Close())
}

func TestOpen(t *testing.T) {
	store, err := highscore.Open(highscore.Options{Backend: highscore.BackendFile, Path: filepath.Join(t.TempDir(), "hs.txt")})
	require.NoError(t, err)
	assert.IsType(t, &highscore.FileStore{}, store)

	store, err = highscore.Open(highscore.Options{Backend: highscore.BackendNone})
	require.NoError(t, err)
	assert.IsType(t, &highscore.NullStore{}, store)

	_, err = highscore.Open(highscore.Options{Backend: "s3"})
	assert.Error(t, err)

	_, err = highscore.Open(highscore.Options{
		Backend: highscore.BackendRedis,
		Redis:   highscore.RedisConfig{URL: "not a url"},
	})
	assert.Error(t, err)
}

func TestParseBackend(t *testing.T) {
	for name, want := range map[string]highscore.Backend{
		"":      highscore.BackendFile,
		"file":  highscore.BackendFile,
		"redis": highscore.BackendRedis,
		"none":  highscore.BackendNone,
	} {
		got, err := highscore.ParseBackend(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := highscore.ParseBackend("sqlite")
	assert.Error(t, err)
}
