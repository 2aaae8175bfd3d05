package port

import (
	"context"
	"math/big"

	"starknet_balance_checker/internal/domain/entity"
)

// LedgerClient defines the read-only operations the balance service needs from a
// Starknet node. Every method performs exactly one remote call.
type LedgerClient interface {
	// GetTokenBalance calls balanceOf(walletAddress) on the token contract.
	GetTokenBalance(ctx context.Context, tokenAddress string, walletAddress string) (*big.Int, error)

	// GetTokenSymbol calls symbol() and returns the raw felt.
	GetTokenSymbol(ctx context.Context, tokenAddress string) (*big.Int, error)

	// GetTokenDecimals calls decimals() on the token contract.
	GetTokenDecimals(ctx context.Context, tokenAddress string) (*big.Int, error)

	// GetClassHashAt returns the class hash deployed at address. It fails for
	// addresses without deployed code.
	GetClassHashAt(ctx context.Context, address string) (string, error)

	// GetNonce returns the account nonce of address as a canonical hex felt.
	GetNonce(ctx context.Context, address string) (string, error)

	// Definition returns the network this client talks to.
	Definition() entity.NetworkDefinition
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName looks a network up by identifier or display name.
	GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool)
}
