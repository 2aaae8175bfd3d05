package port

import "starknet_balance_checker/internal/domain/entity"

// TokenProvider exposes the token registry.
type TokenProvider interface {
	// GetAllTokens returns every registry token in registry order.
	GetAllTokens() []entity.TokenInfo

	// CreateTokenInfo builds a TokenInfo. Explicit decimals win over the registry value.
	CreateTokenInfo(symbol, address string, decimals ...uint8) entity.TokenInfo
}
