package tetris_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/tetris"
)

func TestFallDelay(t *testing.T) {
	timing := tetris.DefaultTiming()

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 465 * time.Millisecond},
		{12, 115 * time.Millisecond},
		{13, 80 * time.Millisecond},
		{20, 80 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timing.FallDelay(tt.level), "level %d", tt.level)
	}

	prev := timing.FallDelay(1)
	for level := 2; level <= 40; level++ {
		d := timing.FallDelay(level)
		assert.LessOrEqual(t, d, prev)
		assert.GreaterOrEqual(t, d, timing.MinFallDelay)
		prev = d
	}
}
