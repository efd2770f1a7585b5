package cli

import (
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/ui"
)

func newPlayCmd(g *globals) *cobra.Command {
	var (
		debug   bool
		noAudio bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long:  `Open the game window. Press F3 to toggle the debug overlay when it is enabled.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store := openStore(g.cfg, logger)
			defer store.Close()

			controller := newController(ctx, g, store, logger)
			return ui.Run(ui.Options{
				Controller:     controller,
				TPS:            g.cfg.Display.TPS,
				Scale:          g.cfg.Display.Scale,
				RepeatDelay:    g.cfg.RepeatDelay(),
				RepeatInterval: g.cfg.RepeatInterval(),
				Debug:          debug || g.cfg.Display.Debug,
				Audio:          g.cfg.Audio.Enabled && !noAudio,
				Volume:         g.cfg.Audio.Volume,
				Logger:         logger,
			})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "show the debug overlay")
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable sound")
	return cmd
}
