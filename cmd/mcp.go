package cmd

import (
	"context"

	"github.com/archdrift/archdrift/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Archdrift MCP server",
	Long:  `Launch an MCP server that allows AI agents to run coupling and drift analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not print to stdout.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(context.Background(), cfg, baselineStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
