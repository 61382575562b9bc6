// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server on stdio for desktop assistants
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/Sankar2i/calendar/handlers"
	"github.com/Sankar2i/calendar/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(ctx context.Context, s *store.Store, version string, logger zerolog.Logger) error {
	logger.Info().Msg("starting calendar MCP server")

	server := handlers.NewServer(s, version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
