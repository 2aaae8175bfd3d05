package mcpserver

import (
	"context"

	"starknet_balance_checker/internal/app/dto"
	"starknet_balance_checker/internal/app/port"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const addressPattern = `^0x[0-9a-fA-F]{1,64}$`

var CheckBalanceTool = mcp.NewTool("check_balance",
	mcp.WithDescription("Check all known token balances of a Starknet wallet."),
	mcp.WithString("address",
		mcp.Description("Starknet wallet address (0x-prefixed hex)"),
		mcp.Pattern(addressPattern),
		mcp.Required(),
	),
)

var CheckCustomTokenTool = mcp.NewTool("check_custom_token",
	mcp.WithDescription("Check the balance of an arbitrary token contract for a Starknet wallet."),
	mcp.WithString("address",
		mcp.Description("Starknet wallet address (0x-prefixed hex)"),
		mcp.Pattern(addressPattern),
		mcp.Required(),
	),
	mcp.WithString("tokenAddress",
		mcp.Description("Token contract address (0x-prefixed hex)"),
		mcp.Pattern(addressPattern),
		mcp.Required(),
	),
)

var GetTokenListTool = mcp.NewTool("get_token_list",
	mcp.WithDescription("List the tokens checked by check_balance."),
)

var GetTokenInfoTool = mcp.NewTool("get_token_info",
	mcp.WithDescription("Read the symbol and decimals declared by a token contract."),
	mcp.WithString("tokenAddress",
		mcp.Description("Token contract address (0x-prefixed hex)"),
		mcp.Pattern(addressPattern),
		mcp.Required(),
	),
)

// BalanceHandlers routes balance tool calls to a port.BalanceService.
type BalanceHandlers struct {
	svc port.BalanceService
}

func NewBalanceHandlers(svc port.BalanceService) *BalanceHandlers {
	return &BalanceHandlers{svc: svc}
}

func (h *BalanceHandlers) HandleCheckBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := req.RequireString("address")
	if err != nil {
		return errorResult(err), nil
	}
	report, err := h.svc.CheckAllBalances(ctx, address)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(dto.NewBalanceReportView(report))
}

func (h *BalanceHandlers) HandleCheckCustomToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := req.RequireString("address")
	if err != nil {
		return errorResult(err), nil
	}
	tokenAddress, err := req.RequireString("tokenAddress")
	if err != nil {
		return errorResult(err), nil
	}

	balance, err := h.svc.CheckCustomTokenBalance(ctx, address, tokenAddress)
	if err != nil {
		return errorResult(err), nil
	}
	if balance == nil {
		return jsonResult(dto.NewNoBalanceView(address, tokenAddress))
	}
	return jsonResult(dto.NewCustomTokenBalanceView(*balance, address))
}

func (h *BalanceHandlers) HandleGetTokenList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(dto.NewTokenListView(h.svc.GetTokenList()))
}

func (h *BalanceHandlers) HandleGetTokenInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tokenAddress, err := req.RequireString("tokenAddress")
	if err != nil {
		return errorResult(err), nil
	}
	info, err := h.svc.GetTokenMetadata(ctx, tokenAddress)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(dto.NewTokenInfoView(info))
}

// Tools pairs every balance tool with its handler.
func (h *BalanceHandlers) Tools(logger port.Logger) []server.ServerTool {
	return []server.ServerTool{
		{Tool: CheckBalanceTool, Handler: instrument(CheckBalanceTool.Name, logger, h.HandleCheckBalance)},
		{Tool: CheckCustomTokenTool, Handler: instrument(CheckCustomTokenTool.Name, logger, h.HandleCheckCustomToken)},
		{Tool: GetTokenListTool, Handler: instrument(GetTokenListTool.Name, logger, h.HandleGetTokenList)},
		{Tool: GetTokenInfoTool, Handler: instrument(GetTokenInfoTool.Name, logger, h.HandleGetTokenInfo)},
	}
}
