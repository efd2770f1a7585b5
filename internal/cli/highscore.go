package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/highscore"
)

func newHighScoreCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highscore",
		Short: "Inspect or reset the stored high score",
	}
	cmd.AddCommand(newHighScoreShowCmd(g))
	cmd.AddCommand(newHighScoreResetCmd(g))
	return cmd
}

func newHighScoreShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored high score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := highscore.Open(g.cfg.HighScoreOptions())
			if err != nil {
				return fmt.Errorf("open high score store: %w", err)
			}
			defer store.Close()

			score, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load high score: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), score)
			return nil
		},
	}
}

func newHighScoreResetCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the stored high score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := highscore.Open(g.cfg.HighScoreOptions())
			if err != nil {
				return fmt.Errorf("open high score store: %w", err)
			}
			defer store.Close()

			if err := store.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset high score: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("high score reset", "backend", g.cfg.HighScore.Backend)
			return nil
		},
	}
}
