package provider

import (
	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
)

type registryEntry struct {
	symbol   string
	address  string
	decimals uint8
}

// Mainnet tokens. Order is significant: balance reports list tokens in this order.
var registry = []registryEntry{ //nolint:gochecknoglobals // static registry
	{"ETH", "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7", 18},
	{"STRK", "0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d", 18},
	{"USDC", "0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8", 6},
	{"USDT", "0x068f5c6a61780768455de69077e07e89787839bf8166decfbf92b645209c0fb8", 6},
	{"DAI", "0x00da114221cb83fa859dbdb4c44beeaa0bb37c7537ad5ae66fe5e0efd20e6eb3", 18},
	{"WBTC", "0x03fe2b97c1fd336e750087d68b9b867997fd64a2661ff3ca5a7c771641e8e7ac", 8},
	{"EKUBO", "0x075afe6402ad5a5c20dd25e10ec3b3986acaa647b77e4ae24b0cbc9a54a27a87", 18},
	{"NSTR", "0x00c530f2c0aa4c16a0806365b0898499fba372e5df7a7172dc6fe9ba777e8007", 18},
	{"BROTHER", "0x03b405a98c9e795d427fe82cdeeeed803f221b52471e3a757574a2b4180793ee", 18},
}

type tokenProviderImpl struct{}

// NewTokenProvider creates a TokenProvider over the static mainnet registry.
func NewTokenProvider() port.TokenProvider {
	return tokenProviderImpl{}
}

// LookupDecimals returns the registry precision of symbol.
func LookupDecimals(symbol string) (uint8, bool) {
	for _, e := range registry {
		if e.symbol == symbol {
			return e.decimals, true
		}
	}
	return 0, false
}

// CreateTokenInfo builds a TokenInfo, resolving decimals from the explicit
// argument, then the registry, then entity.DefaultDecimals.
func (tokenProviderImpl) CreateTokenInfo(symbol, address string, decimals ...uint8) entity.TokenInfo {
	info := entity.TokenInfo{Symbol: symbol, Address: address, Decimals: entity.DefaultDecimals}
	if len(decimals) > 0 {
		info.Decimals = decimals[0]
	} else if d, ok := LookupDecimals(symbol); ok {
		info.Decimals = d
	}
	return info
}

// GetAllTokens returns a fresh slice with one TokenInfo per registry entry.
func (p tokenProviderImpl) GetAllTokens() []entity.TokenInfo {
	tokens := make([]entity.TokenInfo, 0, len(registry))
	for _, e := range registry {
		tokens = append(tokens, p.CreateTokenInfo(e.symbol, e.address))
	}
	return tokens
}
