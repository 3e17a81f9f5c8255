// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tallyhq/tally/internal/engine"
)

// CalculateTool evaluates four-function expressions for MCP clients.
type CalculateTool struct{}

// NewCalculateTool creates a new calculate tool.
func NewCalculateTool() *CalculateTool {
	return &CalculateTool{}
}

// GetTool returns the MCP tool definition.
func (t *CalculateTool) GetTool() mcp.Tool {
	return mcp.NewTool("calculate",
		mcp.WithDescription("Evaluate a four-function arithmetic expression with calculator semantics: "+
			"strictly left-to-right, no operator precedence (2 + 3 * 4 = 20). "+
			"Tokens must be separated by whitespace, e.g. '2 + 3 * 4'."),
		mcp.WithString("expression", mcp.Required(),
			mcp.Description("Whitespace-separated numbers and operators (+ - * /)")),
	)
}

// Handle processes the tool request.
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := mcp.ParseString(req, "expression", "")
	if expression == "" {
		return mcp.NewToolResultError("expression parameter is required"), nil
	}

	result, err := engine.Eval(expression)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate expression: %v", err)), nil
	}
	if result == engine.ErrorText {
		return mcp.NewToolResultError("Undefined result (division by zero)"), nil
	}

	return mcp.NewToolResultText(result), nil
}
