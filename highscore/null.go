package highscore

import "context"

// NullStore never stores anything. Useful for testing or when persistence is disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Load always returns 0.
func (NullStore) Load(ctx context.Context) (int, error) { return 0, nil }

// Save does nothing.
func (NullStore) Save(ctx context.Context, score int) error { return nil }

// Reset does nothing.
func (NullStore) Reset(ctx context.Context) error { return nil }

// Close does nothing.
func (NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)
