package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/orderdesk/orderdesk/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the OrderDesk MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start OrderDesk MCP server (stdio)",
		Long:  "Start the OrderDesk MCP server using stdio transport. Exposes the catalog, the customer directory, and one-step order placement as tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArgs []string
			if path != "" {
				pathArgs = []string{path}
			}
			dir, cfg, err := loadConfig(pathArgs)
			if err != nil {
				return err
			}
			s := mcpadapter.NewOrderDeskMCPServer(resolveDataFile(dir, cfg))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Working directory (defaults to the current directory)")

	return cmd
}
