// Package cli implements the blockfall command-line interface.
//
// Running blockfall with no subcommand opens the game window. Other commands run the
// terminal front-end, inspect the high score store, print the effective configuration and
// benchmark the simulation headlessly. All commands read the same TOML configuration and
// support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/config"
)

// DefaultConfigPath is read when --config is not given. A missing file means defaults.
const DefaultConfigPath = "blockfall.toml"

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// globals holds the persistent flags and the configuration they resolve to.
type globals struct {
	configPath string
	verbose    bool
	seed       uint64
	cfg        config.Config
}

// Execute runs the blockfall CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "blockfall",
		Short:        "Blockfall is a falling-block puzzle game",
		Long:         `Blockfall is a falling-block puzzle game with a desktop window, a terminal front-end and a headless benchmark.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg

			level := cfg.LogLevel()
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", DefaultConfigPath, "path to the TOML configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().Uint64Var(&g.seed, "seed", 0, "piece selection seed (0 uses the config or a random seed)")

	play := newPlayCmd(g)
	root.RunE = play.RunE
	root.Flags().AddFlagSet(play.Flags())

	root.AddCommand(play)
	root.AddCommand(newTUICmd(g))
	root.AddCommand(newHighScoreCmd(g))
	root.AddCommand(newConfigCmd(g))
	root.AddCommand(newBenchCmd(g))

	root.SetVersionTemplate(fmt.Sprintf("blockfall %s\n", version))
	return root
}
