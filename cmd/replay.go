package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/mazegen/maze"
	"github.com/they4kman/mazegen/render/text"
)

var replayCmd = &cobra.Command{
	Use:   "replay <record.yaml>",
	Short: "Regenerate a saved maze from its seed and compare it to the saved board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := mazeConfig.Logger()
		if err != nil {
			return err
		}

		record, err := maze.LoadRecordFile(args[0])
		if err != nil {
			return err
		}
		saved, err := record.Snapshot()
		if err != nil {
			return err
		}

		opts, err := record.Options()
		if err != nil {
			return err
		}
		opts.Logger = logger

		replayed, err := maze.Generate(opts)
		if err != nil {
			return err
		}

		text.New(cmd.OutOrStdout()).Render(replayed)

		if !replayed.Equal(saved) {
			return fmt.Errorf("replayed maze differs from the board saved in %s", args[0])
		}

		logger.WithFields(logrus.Fields{
			"run_id": record.RunID,
			"seed":   record.Seed,
		}).Info("Replay matches saved board")
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <record.yaml>",
	Short: "Check that a saved board is a perfect maze",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := maze.LoadRecordFile(args[0])
		if err != nil {
			return err
		}
		saved, err := record.Snapshot()
		if err != nil {
			return err
		}
		if err := maze.Verify(saved); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: perfect %dx%d maze\n", args[0], saved.Rows(), saved.Cols())
		return nil
	},
}
