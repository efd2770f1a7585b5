package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

// openStore opens the configured high score store. A store that cannot be opened is
// replaced by a NullStore so the game still runs.
func openStore(cfg config.Config, logger *log.Logger) highscore.Store {
	store, err := highscore.Open(cfg.HighScoreOptions())
	if err != nil {
		logger.Warn("high score store unavailable, scores will not be saved", "backend", cfg.HighScore.Backend, "err", err)
		return highscore.NewNullStore()
	}
	return store
}

// newController builds a controller seeded with the stored high score and wired to the
// event log and the store.
func newController(ctx context.Context, g *globals, store highscore.Store, logger *log.Logger) *tetris.Controller {
	high := highscore.LoadOrZero(ctx, store, logger)
	opts := g.cfg.TetrisOptions(g.seed, high)
	opts.Listeners = append(opts.Listeners,
		eventLogger(logger),
		&highScoreSaver{ctx: ctx, store: store, logger: logger},
	)

	c := tetris.NewController(opts)
	logger.Info("session started", "session", c.Session().ID, "high_score", high, "selection", opts.Selection)
	return c
}

// eventLogger logs every game event at debug level.
func eventLogger(logger *log.Logger) tetris.ListenerFunc {
	return func(ev tetris.Event) {
		switch ev.Kind {
		case tetris.EventLinesCleared:
			logger.Debug("lines cleared", "session", ev.SessionID, "lines", ev.Lines, "points", ev.Points, "all_clear", ev.AllClear)
		case tetris.EventLevelUp:
			logger.Debug("level up", "session", ev.SessionID, "level", ev.Level)
		case tetris.EventGameOver:
			logger.Info("game over", "session", ev.SessionID, "score", ev.Score, "high_score", ev.HighScore, "new_high", ev.NewHighScore)
		case tetris.EventRestarted:
			logger.Info("session restarted", "session", ev.SessionID, "high_score", ev.HighScore)
		default:
			logger.Debug(ev.Kind.String(), "session", ev.SessionID)
		}
	}
}

// highScoreSaver persists a new high score when a game ends.
type highScoreSaver struct {
	ctx    context.Context
	store  highscore.Store
	logger *log.Logger
}

func (h *highScoreSaver) HandleEvent(ev tetris.Event) {
	if ev.Kind != tetris.EventGameOver || !ev.NewHighScore {
		return
	}
	highscore.SaveOrWarn(h.ctx, h.store, ev.HighScore, h.logger)
}
