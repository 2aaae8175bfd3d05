package networkdefinition

import (
	"fmt"
	"strings"

	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
)

// DefaultNetworkIdentifier is the network served when the config names none.
const DefaultNetworkIdentifier = "mainnet"

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Mainnet = entity.NetworkDefinition{
		Identifier:       "mainnet",
		Name:             "Starknet Mainnet",
		ChainID:          "SN_MAIN",
		NativeSymbol:     "ETH",
		RPCURL:           "https://starknet-mainnet.public.blastapi.io/rpc/v0_7",
		BlockExplorerURL: "https://starkscan.co",
	}
	Sepolia = entity.NetworkDefinition{
		Identifier:       "sepolia",
		Name:             "Starknet Sepolia Testnet",
		ChainID:          "SN_SEPOLIA",
		NativeSymbol:     "ETH",
		RPCURL:           "https://starknet-testnet.public.blastapi.io/rpc/v0_7",
		BlockExplorerURL: "https://sepolia.starkscan.co",
	}
)

var allKnownDefinitions = []entity.NetworkDefinition{Mainnet, Sepolia} //nolint:gochecknoglobals

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger port.Logger
	defs   []entity.NetworkDefinition
}

// NewNetworkDefinitionProvider creates a provider over the predefined networks.
func NewNetworkDefinitionProvider(log port.Logger) *NetworkDefinitionProvider {
	defs := make([]entity.NetworkDefinition, len(allKnownDefinitions))
	copy(defs, allKnownDefinitions)
	return &NetworkDefinitionProvider{logger: log, defs: defs}
}

// GetAllNetworkDefinitions returns a copy of every known network definition.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defsCopy := make([]entity.NetworkDefinition, len(p.defs))
	copy(defsCopy, p.defs)
	return defsCopy
}

// GetNetworkDefinitionByName returns a network by identifier or display name, case-insensitively.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.defs {
		if strings.EqualFold(def.Identifier, nameOrIdentifier) || strings.EqualFold(def.Name, nameOrIdentifier) {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}

// Resolve picks the single network the process serves. An empty identifier
// selects mainnet; a non-empty rpcURL replaces the predefined endpoint.
func (p *NetworkDefinitionProvider) Resolve(identifier, rpcURL string) (entity.NetworkDefinition, error) {
	if identifier == "" {
		identifier = DefaultNetworkIdentifier
	}
	def, ok := p.GetNetworkDefinitionByName(identifier)
	if !ok {
		return entity.NetworkDefinition{}, fmt.Errorf("unknown network %q", identifier)
	}
	if rpcURL != "" {
		p.logger.Info("Overriding network RPC endpoint", "network", def.Identifier, "rpc_url", rpcURL)
		def.RPCURL = rpcURL
	}
	return def, nil
}
