package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/core"
)

// indicesCmd lists every supported index with its formula, severity rule and
// the domain it feeds, using the active threshold configuration.
var indicesCmd = &cobra.Command{
	Use:     "indices",
	Short:   "List supported indices with formulas and severity rules",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("listing indices", core.ExecuteIndices)
	},
}
