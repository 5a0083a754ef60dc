package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/mcp"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/runstore"
)

// mcpCmd starts the Model Context Protocol server over stdio, exposing panel
// scoring and report rendering as tools.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the MCP server for panel scoring over stdio",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg, runstore.Manager); err != nil {
			contract.LogFatal("running MCP server", err)
		}
	},
}
