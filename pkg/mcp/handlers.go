package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rhobs/qiita-mcp/pkg/tools"
)

// ToolHandler forwards calls for the named tool to the registry. Failures are
// always encoded in the result, never returned as an error.
func ToolHandler(registry *tools.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := registry.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return result.ToMCPResult()
	}
}
