package main

import (
	"os"

	"starknet_balance_checker/internal/app/service"
	"starknet_balance_checker/internal/infrastructure/mcpserver"
	"starknet_balance_checker/internal/pkg/logger"
	"starknet_balance_checker/internal/pkg/utils"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	utils.LoadEnvironment()

	if err := logger.Init(utils.GetEnv("LOG_LEVEL", "info"), utils.GetEnv("LOG_FILE", "")); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	s := mcpserver.NewCalculatorServer("calculator", "1.0.0", service.NewCalculatorService(), logger.NewSlogAdapter())

	logger.Info("MCP calculator server running on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("MCP server stopped", "error", err)
	}
}
