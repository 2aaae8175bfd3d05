package entity

// NetworkDefinition holds the configuration for a Starknet network.
type NetworkDefinition struct {
	Identifier       string `json:"identifier" yaml:"identifier"` // e.g. "mainnet", "sepolia"
	Name             string `json:"name" yaml:"name"`
	ChainID          string `json:"chainId" yaml:"chainId"` // short string, e.g. "SN_MAIN"
	NativeSymbol     string `json:"nativeSymbol" yaml:"nativeSymbol"`
	RPCURL           string `json:"rpcUrl" yaml:"rpcUrl"`
	BlockExplorerURL string `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}
