// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mcpserver exposes the calculator engine to MCP clients over stdio,
// so tool-calling agents can use the same chained arithmetic as the keypad.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tallyhq/tally/internal/logging"
)

// Server wraps the MCP server with the calculator tools registered.
type Server struct {
	mcpServer *server.MCPServer
}

// New creates a Tally MCP server.
func New(version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("tally", version),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	calc := NewCalculateTool()
	s.mcpServer.AddTool(calc.GetTool(), calc.Handle)
}

// Start serves MCP requests on stdin/stdout until the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	logging.Debugf("starting MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}
