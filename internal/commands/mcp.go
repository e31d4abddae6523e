package commands

import (
	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run MCP servers (used by coding agents)",
	Hidden: true,
}

var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Run the webmend MCP server",
	Long:  "Starts the webmend MCP server over stdio. Coding agents use it to run audits, fixers, codemods, and config regeneration via typed tool calls.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.Run(cmd.Context())
	},
}

func init() {
	mcpCmd.AddCommand(mcpToolsCmd)
}
