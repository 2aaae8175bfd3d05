package entity

// CustomTokenSymbol labels tokens that are not part of the registry.
const CustomTokenSymbol = "CUSTOM"

// DefaultDecimals is used whenever a token's precision is unknown.
const DefaultDecimals uint8 = 18

// TokenInfo holds the details of a specific token.
type TokenInfo struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Address  string `json:"address" yaml:"address"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}
