// Package highscore persists the best score between runs.
package highscore

import (
	"context"
	"errors"
	"fmt"
)

// ErrCorrupt is returned when a stored high score cannot be parsed.
var ErrCorrupt = errors.New("corrupt high score")

// Store loads and saves a single high score.
type Store interface {
	// Load returns the stored score, or 0 when none has been saved yet.
	Load(ctx context.Context) (int, error)
	// Save overwrites the stored score.
	Save(ctx context.Context, score int) error
	// Reset removes the stored score.
	Reset(ctx context.Context) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile  Backend = "file"
	BackendRedis Backend = "redis"
	BackendNone  Backend = "none"
)

// ParseBackend validates a backend name. The empty string means BackendFile.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendRedis, BackendNone:
		return Backend(name), nil
	}
	return "", fmt.Errorf("unknown high score backend %q", name)
}

// Options select and configure a Store for Open.
type Options struct {
	Backend Backend
	Path    string
	Redis   RedisConfig
}

// Open creates the store selected by opts.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Path), nil
	case BackendRedis:
		return NewRedisStore(opts.Redis)
	case BackendNone:
		return NewNullStore(), nil
	}
	return nil, fmt.Errorf("unknown high score backend %q", opts.Backend)
}

func checkScore(score int) error {
	if score < 0 {
		return fmt.Errorf("high score must not be negative, got %d", score)
	}
	return nil
}
