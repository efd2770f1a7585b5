package highscore

import (
	"context"

	"github.com/charmbracelet/log"
)

// LoadOrZero loads the high score, logging any failure as a warning and returning 0.
func LoadOrZero(ctx context.Context, store Store, logger *log.Logger) int {
	score, err := store.Load(ctx)
	if err != nil {
		logger.Warn("high score unavailable, starting from 0", "err", err)
		return 0
	}
	return score
}

// SaveOrWarn saves the high score, logging any failure as a warning.
func SaveOrWarn(ctx context.Context, store Store, score int, logger *log.Logger) {
	if err := store.Save(ctx, score); err != nil {
		logger.Warn("high score not saved", "score", score, "err", err)
	}
}
