package cli

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/tetris"
)

// benchIntents are drawn at random by the headless player. Restart and quit are handled
// separately.
var benchIntents = []tetris.Intent{
	tetris.IntentMoveLeft,
	tetris.IntentMoveRight,
	tetris.IntentSoftDrop,
	tetris.IntentRotate,
	tetris.IntentHardDrop,
}

type benchOptions struct {
	Duration time.Duration
	Ticks    int
	Step     time.Duration
	// InputRate is the chance per tick of the player pressing a key.
	InputRate      float64
	Seed           uint64
	GCPauseMetrics bool
}

func newBenchCmd(g *globals) *cobra.Command {
	opts := benchOptions{}
	var tps int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the simulation headlessly and report throughput",
		Long:  `Run the simulation with a random player as fast as possible and print a report of update times, game statistics and memory usage.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if tps <= 0 {
				tps = g.cfg.Display.TPS
			}
			opts.Step = time.Second / time.Duration(tps)
			opts.Seed = g.seed
			if opts.Seed == 0 {
				opts.Seed = g.cfg.Game.Seed
			}
			if opts.Seed == 0 {
				opts.Seed = rand.Uint64()
			}

			tetrisOpts := g.cfg.TetrisOptions(opts.Seed, 0)
			controller := tetris.NewController(tetrisOpts)

			logger.Info("starting benchmark", "duration", opts.Duration, "ticks", opts.Ticks, "seed", opts.Seed)
			report := runBench(ctx, controller, opts)
			logger.Info("benchmark finished", "updates", report.TotalUpdates, "elapsed", report.TotalTime.Round(time.Millisecond))

			return report.Generate(cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&opts.Duration, "duration", 10*time.Second, "wall time to run for")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 0, "stop after this many ticks (0 runs for --duration)")
	cmd.Flags().IntVar(&tps, "tps", 0, "simulated ticks per second (0 uses the config)")
	cmd.Flags().Float64Var(&opts.InputRate, "input-rate", 0.3, "chance per tick of a random key press")
	cmd.Flags().BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "include GC pause totals in the report")
	return cmd
}

// runBench drives controller with a seeded random player until ctx is done, the duration
// elapses or the tick budget is spent.
func runBench(ctx context.Context, controller *tetris.Controller, opts benchOptions) *Report {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	report := &Report{
		Duration:       opts.Duration,
		Ticks:          opts.Ticks,
		Step:           opts.Step,
		Seed:           opts.Seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}
	controller.AddListener(tetris.ListenerFunc(report.Games.record))

	if opts.Duration > 0 && opts.Ticks <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	var intents []tetris.Intent
Loop:
	for {
		if opts.Ticks > 0 && report.TotalUpdates >= int64(opts.Ticks) {
			break
		}
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		intents = intents[:0]
		if controller.Session().IsGameOver() {
			intents = append(intents, tetris.IntentRestart)
		} else if rng.Float64() < opts.InputRate {
			intents = append(intents, benchIntents[rng.IntN(len(benchIntents))])
		}

		updateStart := time.Now()
		controller.Tick(opts.Step, intents...)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
	}

	report.TotalTime = time.Since(startTime)
	report.Simulated = time.Duration(report.TotalUpdates) * opts.Step
	report.UpdateTime.Finalize()
	report.Systems = controller.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}
