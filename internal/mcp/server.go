// ABOUTME: MCP server setup for the daylog tracker.
// ABOUTME: Wraps the MCP server around the tracker components built at startup.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/daylog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	logger    *zap.Logger
}

// NewServer creates a new MCP server over the given tracker.
func NewServer(t *tracker.Tracker, logger *zap.Logger) (*Server, error) {
	if t == nil {
		return nil, errors.New("tracker is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "daylog",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   t,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
