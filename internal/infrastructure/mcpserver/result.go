package mcpserver

import (
	"context"

	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonResult renders v as an indented JSON text payload.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports err to the caller inside the tool result.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// instrument wraps a handler with logging and the tool-call counter.
func instrument(name string, logger port.Logger, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug("Tool invoked", "tool", name)
		res, err := h(ctx, req)
		failed := err != nil || (res != nil && res.IsError)
		metrics.ObserveToolCall(name, failed)
		if failed {
			logger.Warn("Tool call failed", "tool", name, "error", err)
		}
		return res, err
	}
}
