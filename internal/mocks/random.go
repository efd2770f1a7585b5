package mocks

import (
	"github.com/plus3/blockfall/tetris"
)

// MockRandom is a mock implementation of tetris.Source for testing
type MockRandom struct {
	// IntNResults is a queue of results to return from IntN
	IntNResults []int
	intNIndex   int

	// Calls records the n argument of every IntN call
	Calls []int
}

// Ensure MockRandom implements tetris.Source
var _ tetris.Source = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntNResults: values}
}

// IntN returns the next queued result, or 0 if none remaining
func (r *MockRandom) IntN(n int) int {
	r.Calls = append(r.Calls, n)
	if r.intNIndex >= len(r.IntNResults) {
		return 0
	}
	result := r.IntNResults[r.intNIndex]
	r.intNIndex++
	return result
}

// QueueIntN adds values to the IntN result queue
func (r *MockRandom) QueueIntN(values ...int) {
	r.IntNResults = append(r.IntNResults, values...)
}

// QueueKinds adds piece kinds to the IntN result queue
func (r *MockRandom) QueueKinds(kinds ...tetris.Kind) {
	for _, k := range kinds {
		r.IntNResults = append(r.IntNResults, int(k))
	}
}

// Remaining returns the number of queued results not yet consumed
func (r *MockRandom) Remaining() int {
	return len(r.IntNResults) - r.intNIndex
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntNResults = nil
	r.intNIndex = 0
	r.Calls = nil
}
