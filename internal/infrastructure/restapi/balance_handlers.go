package restapi

import (
	"errors"
	"net/http"

	"starknet_balance_checker/internal/app/dto"
	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
	"starknet_balance_checker/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// BalanceHandler serves the balance and token endpoints over HTTP.
type BalanceHandler struct {
	svc    port.BalanceService
	logger port.Logger
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(svc port.BalanceService, logger port.Logger) *BalanceHandler {
	return &BalanceHandler{svc: svc, logger: logger}
}

// respondError maps validation failures to 400. The service in this module
// swallows remote failures, so 502 only covers BalanceService implementations
// that surface them.
func (h *BalanceHandler) respondError(c *gin.Context, tool string, err error) {
	metrics.ObserveToolCall(tool, true)
	status := http.StatusBadGateway
	if errors.Is(err, entity.ErrInvalidAddress) {
		status = http.StatusBadRequest
	}
	h.logger.Warn("Request failed", "path", c.FullPath(), "status", status, "error", err)
	c.JSON(status, dto.ErrorView{Error: err.Error()})
}

// GetBalancesHandler returns every registry token balance of a wallet.
func (h *BalanceHandler) GetBalancesHandler(c *gin.Context) {
	report, err := h.svc.CheckAllBalances(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.respondError(c, "check_balance", err)
		return
	}
	metrics.ObserveToolCall("check_balance", false)
	c.JSON(http.StatusOK, dto.NewBalanceReportView(report))
}

// GetCustomTokenBalanceHandler returns the balance of one arbitrary token.
// Zero or unavailable balances are reported as 404.
func (h *BalanceHandler) GetCustomTokenBalanceHandler(c *gin.Context) {
	address := c.Param("address")
	tokenAddress := c.Param("tokenAddress")

	balance, err := h.svc.CheckCustomTokenBalance(c.Request.Context(), address, tokenAddress)
	if err != nil {
		h.respondError(c, "check_custom_token", err)
		return
	}
	metrics.ObserveToolCall("check_custom_token", false)
	if balance == nil {
		c.JSON(http.StatusNotFound, dto.NewNoBalanceView(address, tokenAddress))
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomTokenBalanceView(*balance, address))
}

// GetTokensHandler lists the registry tokens.
func (h *BalanceHandler) GetTokensHandler(c *gin.Context) {
	metrics.ObserveToolCall("get_token_list", false)
	c.JSON(http.StatusOK, dto.NewTokenListView(h.svc.GetTokenList()))
}

// GetTokenInfoHandler reads a token's on-chain metadata.
func (h *BalanceHandler) GetTokenInfoHandler(c *gin.Context) {
	info, err := h.svc.GetTokenMetadata(c.Request.Context(), c.Param("tokenAddress"))
	if err != nil {
		h.respondError(c, "get_token_info", err)
		return
	}
	metrics.ObserveToolCall("get_token_info", false)
	c.JSON(http.StatusOK, dto.NewTokenInfoView(info))
}
