package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewOrderDeskMCPServer creates an MCP server with all OrderDesk tools
// registered. dataFile is the JSON store backing the tools.
func NewOrderDeskMCPServer(dataFile string) *server.MCPServer {
	s := server.NewMCPServer(
		"orderdesk",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, dataFile)

	return s
}
