package mcpserver

import (
	"starknet_balance_checker/internal/app/port"

	"github.com/mark3labs/mcp-go/server"
)

// NewBalanceServer creates the MCP server exposing the balance tools.
func NewBalanceServer(name, version string, svc port.BalanceService, logger port.Logger) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.AddTools(NewBalanceHandlers(svc).Tools(logger)...)
	return s
}

// NewCalculatorServer creates the MCP server exposing add and multiply.
func NewCalculatorServer(name, version string, calc port.CalculatorService, logger port.Logger) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.AddTools(NewCalculatorHandlers(calc).Tools(logger)...)
	return s
}
