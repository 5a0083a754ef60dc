package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/core"
)

// batchCmd scores every row of a CSV panel file concurrently and prints the
// results ranked by total score.
var batchCmd = &cobra.Command{
	Use:     "batch <csv-file>",
	Short:   "Score a CSV of panels concurrently and rank by total risk",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// The positional argument is the batch CSV, not a single-panel file.
		cfg.BatchFile = cfg.InputFile
		cfg.InputFile = ""
		runExecutor("scoring batch", core.ExecuteBatch)
	},
}
