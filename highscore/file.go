package highscore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the file used when none is configured.
const DefaultPath = "high_score.txt"

// FileStore keeps the high score as a decimal integer in a plain text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is not touched until
// the first Load or Save.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the stored score. A missing file yields 0 without error.
func (s *FileStore) Load(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	return parseScore(string(data))
}

// Save overwrites the file with score.
func (s *FileStore) Save(ctx context.Context, score int) error {
	if err := checkScore(score); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create high score directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// Reset deletes the file. A missing file is not an error.
func (s *FileStore) Reset(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove high score: %w", err)
	}
	return nil
}

// Close does nothing.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)

func parseScore(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	score, err := strconv.Atoi(trimmed)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, trimmed)
	}
	return score, nil
}
