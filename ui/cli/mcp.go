// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/buildvars"
	"github.com/tallyhq/tally/internal/mcpserver"
)

// mcpCmd serves the calculator over the Model Context Protocol on stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing the calculator as a tool",
	Long: `Serve the calculator over the Model Context Protocol on stdin/stdout.
Tool-calling clients get a 'calculate' tool with the same chained
left-to-right semantics as the keypad.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.New(buildvars.VersionOrDefault(version)).Start(cmd.Context())
	},
}
