package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/mazegen/config"
	"github.com/they4kman/mazegen/director/paced"
	"github.com/they4kman/mazegen/maze"
	"github.com/they4kman/mazegen/render/text"
)

var mazeConfig = config.Default()
var (
	animate bool
	color   bool
	blocks  bool
)

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate perfect mazes, step by step",
	Long: `mazegen carves a perfect maze (exactly one path between any two
cells) with a depth-first backtracking walk.

Print a finished maze
	mazegen -r 21 -c 41

Watch it being carved
	mazegen --animate --delay 20ms

Save a replay record, then replay it
	mazegen --seed 42 --save-dir mazes
	mazegen replay mazes/<file>.yaml
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := mazeConfig.Logger()
		if err != nil {
			return err
		}

		if mazeConfig.Seed == 0 {
			mazeConfig.Seed = time.Now().UnixNano()
		}

		strategy, err := maze.ParseEndStrategy(mazeConfig.EndStrategy)
		if err != nil {
			return err
		}

		renderer := text.New(cmd.OutOrStdout())
		renderer.Color = color
		renderer.Blocks = blocks
		renderer.Redraw = animate

		opts := maze.Options{
			Rows:        mazeConfig.Rows,
			Cols:        mazeConfig.Cols,
			Seed:        mazeConfig.Seed,
			EndStrategy: strategy,
			Logger:      logger,
		}
		if animate {
			opts.Renderer = renderer
		}

		generator, err := maze.NewGenerator(opts)
		if err != nil {
			return err
		}

		director := paced.New(0)
		if animate {
			director.Delay = mazeConfig.Delay
		}
		director.Init(generator)

		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		finished := make(chan struct{})
		defer close(finished)
		go func() {
			select {
			case <-interrupts:
				director.End()
			case <-finished:
			}
		}()

		if err := director.ActContinuously(); err != nil {
			return err
		}

		if !animate {
			renderer.Render(generator.Snapshot())
		}
		if err := renderer.Err(); err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"seed":  mazeConfig.Seed,
			"steps": generator.NumSteps(),
		}).Info("Generated maze")

		if mazeConfig.SaveDir != "" {
			record, err := maze.NewRecord(generator)
			if err != nil {
				return err
			}
			path, err := record.Save(mazeConfig.SaveDir, time.Now())
			if err != nil {
				return err
			}
			logger.WithField("path", path).Info("Saved replay record")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("mazegen failed")
		os.Exit(1)
	}
}

type endStrategyValue string

func (value *endStrategyValue) String() string {
	return string(*value)
}

func (value *endStrategyValue) Set(name string) error {
	if _, err := maze.ParseEndStrategy(name); err != nil {
		return err
	}
	*value = endStrategyValue(name)
	return nil
}

func (value *endStrategyValue) Type() string {
	return "maze.EndStrategy"
}

func init() {
	envConfig, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mazeConfig = envConfig

	flags := rootCmd.Flags()
	flags.IntVarP(&mazeConfig.Rows, "rows", "r", mazeConfig.Rows, "Number of grid rows (odd, at least 5)")
	flags.IntVarP(&mazeConfig.Cols, "cols", "c", mazeConfig.Cols, "Number of grid columns (odd, at least 5)")
	flags.Int64VarP(&mazeConfig.Seed, "seed", "s", mazeConfig.Seed, "Random seed; 0 picks one from the clock")
	flags.Var((*endStrategyValue)(&mazeConfig.EndStrategy), "end", `How the end cell is chosen.
random: uniformly among the boundary cells other than the start
farthest: the boundary cell farthest from the start`)
	flags.BoolVarP(&animate, "animate", "a", false, "Draw every generation step")
	flags.DurationVar(&mazeConfig.Delay, "delay", mazeConfig.Delay, "Pause between animated steps")
	flags.BoolVar(&color, "color", false, "Colour start, end and unvisited cells")
	flags.BoolVar(&blocks, "blocks", false, "Draw cells as blocks instead of symbols")
	flags.StringVar(&mazeConfig.SaveDir, "save-dir", mazeConfig.SaveDir, "Directory to save a replay record into")
	rootCmd.PersistentFlags().StringVar(&mazeConfig.LogLevel, "log-level", mazeConfig.LogLevel, "Log level (debug, info, warning, error)")

	rootCmd.AddCommand(replayCmd, verifyCmd)
}
