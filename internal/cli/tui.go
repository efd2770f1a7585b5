package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/tui"
)

func newTUICmd(g *globals) *cobra.Command {
	var (
		logFile string
		noAudio bool
		tps     int
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Long:  `Play in the terminal. Log output is discarded unless --log-file is given, since the game owns the screen.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger := newLogger(w, loggerFromContext(cmd.Context()).GetLevel())
			ctx := withLogger(cmd.Context(), logger)

			store := openStore(g.cfg, logger)
			defer store.Close()

			return tui.Run(tui.Options{
				Controller:  newController(ctx, g, store, logger),
				TPS:         tps,
				RepeatDelay: g.cfg.RepeatDelay(),
				Audio:       g.cfg.Audio.Enabled && !noAudio,
				Volume:      g.cfg.Audio.Volume,
				Logger:      logger,
			})
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable sound")
	cmd.Flags().IntVar(&tps, "tps", 30, "simulation ticks per second")
	return cmd
}
