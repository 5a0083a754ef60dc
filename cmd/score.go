package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/core"
)

// scoreCmd computes indices, domain scores and the total risk score for a
// single panel given via flags or a JSON panel file.
var scoreCmd = &cobra.Command{
	Use:     "score [panel-file]",
	Short:   "Score a single panel and print indices, domain scores and total risk",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("scoring panel", core.ExecuteScore)
	},
}
