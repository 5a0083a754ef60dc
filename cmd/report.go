package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/core"
)

// reportCmd renders the full narrative report document for a single panel,
// including patient details, domain interpretations and index full forms.
var reportCmd = &cobra.Command{
	Use:     "report [panel-file]",
	Short:   "Render the full risk report document for a single panel",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("rendering report", core.ExecuteReport)
	},
}
