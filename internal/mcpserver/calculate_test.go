// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callCalculate(t *testing.T, expression string) *mcp.CallToolResult {
	t.Helper()
	tool := NewCalculateTool()
	req := mcp.CallToolRequest{}
	req.Params.Name = "calculate"
	req.Params.Arguments = map[string]any{"expression": expression}
	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestCalculateTool_Handle(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   string
	}{
		{
			name:       "Simple addition",
			expression: "2 + 3",
			expected:   "5",
		},
		{
			name:       "Left to right without precedence",
			expression: "2 + 3 * 4",
			expected:   "20",
		},
		{
			name:       "Decimal result keeps significant digits",
			expression: "25 / 4",
			expected:   "6.25",
		},
		{
			name:       "Single number",
			expression: "42",
			expected:   "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callCalculate(t, tt.expression)
			assert.False(t, result.IsError)
			assert.Equal(t, tt.expected, resultText(t, result))
		})
	}
}

func TestCalculateTool_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{
			name:       "Missing expression",
			expression: "",
		},
		{
			name:       "Division by zero",
			expression: "5 / 0",
		},
		{
			name:       "Malformed expression",
			expression: "2 +",
		},
		{
			name:       "Unknown operator",
			expression: "2 % 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callCalculate(t, tt.expression)
			assert.True(t, result.IsError)
		})
	}
}

func TestCalculateTool_GetTool(t *testing.T) {
	tool := NewCalculateTool().GetTool()
	assert.Equal(t, "calculate", tool.Name)
}
