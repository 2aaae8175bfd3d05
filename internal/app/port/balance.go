package port

import (
	"context"

	"starknet_balance_checker/internal/domain/entity"
)

// BalanceService defines the balance reading operations exposed to the transports.
type BalanceService interface {
	// CheckAllBalances reads every registry token balance of walletAddress.
	// It fails only when walletAddress is invalid.
	CheckAllBalances(ctx context.Context, walletAddress string) (entity.BalanceReport, error)

	// CheckCustomTokenBalance reads one arbitrary token. A nil balance means zero or unavailable.
	CheckCustomTokenBalance(ctx context.Context, walletAddress, tokenAddress string) (*entity.TokenBalance, error)

	// GetTokenList returns the registry tokens.
	GetTokenList() []entity.TokenInfo

	// GetTokenMetadata discovers a token's symbol and decimals on chain.
	GetTokenMetadata(ctx context.Context, tokenAddress string) (entity.TokenInfo, error)
}

// CalculatorService performs the arithmetic of the calculator tool server.
type CalculatorService interface {
	Add(a, b float64) entity.Calculation
	Multiply(a, b float64) entity.Calculation
}
