package mcpserver

import (
	"context"

	"starknet_balance_checker/internal/app/port"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var AddTool = mcp.NewTool("add",
	mcp.WithDescription("Add two numbers together"),
	mcp.WithNumber("a", mcp.Description("First number"), mcp.Required()),
	mcp.WithNumber("b", mcp.Description("Second number"), mcp.Required()),
)

var MultiplyTool = mcp.NewTool("multiply",
	mcp.WithDescription("Multiply two numbers"),
	mcp.WithNumber("a", mcp.Description("First number"), mcp.Required()),
	mcp.WithNumber("b", mcp.Description("Second number"), mcp.Required()),
)

// CalculatorHandlers routes arithmetic tool calls to a port.CalculatorService.
type CalculatorHandlers struct {
	calc port.CalculatorService
}

func NewCalculatorHandlers(calc port.CalculatorService) *CalculatorHandlers {
	return &CalculatorHandlers{calc: calc}
}

func operands(req mcp.CallToolRequest) (float64, float64, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return 0, 0, err
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (h *CalculatorHandlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := operands(req)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(h.calc.Add(a, b).String()), nil
}

func (h *CalculatorHandlers) HandleMultiply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := operands(req)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(h.calc.Multiply(a, b).String()), nil
}

func (h *CalculatorHandlers) Tools(logger port.Logger) []server.ServerTool {
	return []server.ServerTool{
		{Tool: AddTool, Handler: instrument(AddTool.Name, logger, h.HandleAdd)},
		{Tool: MultiplyTool, Handler: instrument(MultiplyTool.Name, logger, h.HandleMultiply)},
	}
}
