package service

import (
	"context"

	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
	"starknet_balance_checker/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const defaultNonce = "0"

// BalanceServiceImpl implements port.BalanceService.
// Remote failures never reach callers: they collapse into a nil balance or a
// safe default. Only address validation produces errors.
type BalanceServiceImpl struct {
	client                port.LedgerClient
	tokenProvider         port.TokenProvider
	logger                port.Logger
	maxConcurrentRequests int
}

// NewBalanceService creates a new instance of BalanceServiceImpl.
// maxConcurrentRequests <= 0 lets every remote read of a report run at once.
func NewBalanceService(
	client port.LedgerClient,
	tp port.TokenProvider,
	l port.Logger,
	maxConcurrentRequests int,
) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		client:                client,
		tokenProvider:         tp,
		logger:                l,
		maxConcurrentRequests: maxConcurrentRequests,
	}
}

var _ port.BalanceService = (*BalanceServiceImpl)(nil)

func validateAddress(address string, kind entity.AddressKind) error {
	if !utils.IsValidAddress(address) {
		return &entity.InvalidAddressError{Kind: kind, Address: address}
	}
	return nil
}

func (s *BalanceServiceImpl) newGroup() *errgroup.Group {
	g := new(errgroup.Group)
	if s.maxConcurrentRequests > 0 {
		g.SetLimit(s.maxConcurrentRequests)
	}
	return g
}

// getTokenBalance reads one balance. It returns nil when the call fails or the
// balance formats to "0".
func (s *BalanceServiceImpl) getTokenBalance(ctx context.Context, token entity.TokenInfo, walletAddress string) *entity.TokenBalance {
	raw, err := s.client.GetTokenBalance(ctx, token.Address, walletAddress)
	if err != nil || raw == nil {
		s.logger.Debug("Token balance unavailable", "token", token.Symbol, "token_address", token.Address,
			"wallet", walletAddress, "error", err)
		return nil
	}

	rawBalance := raw.String()
	formatted := utils.FormatDecimal(rawBalance, token.Decimals)
	if formatted == "0" {
		return nil
	}

	return &entity.TokenBalance{
		Symbol:     token.Symbol,
		Address:    token.Address,
		Balance:    formatted,
		Decimals:   token.Decimals,
		RawBalance: rawBalance,
	}
}

// CheckTokenBalance validates both addresses and reads a single token balance.
func (s *BalanceServiceImpl) CheckTokenBalance(ctx context.Context, walletAddress string, token entity.TokenInfo) (*entity.TokenBalance, error) {
	if err := validateAddress(walletAddress, entity.WalletAddressKind); err != nil {
		return nil, err
	}
	if err := validateAddress(token.Address, entity.TokenAddressKind); err != nil {
		return nil, err
	}
	return s.getTokenBalance(ctx, token, walletAddress), nil
}

// CheckCustomTokenBalance reads a token outside the registry. The token is
// labelled CUSTOM and assumed to use the default precision.
func (s *BalanceServiceImpl) CheckCustomTokenBalance(ctx context.Context, walletAddress, tokenAddress string) (*entity.TokenBalance, error) {
	if err := validateAddress(walletAddress, entity.WalletAddressKind); err != nil {
		return nil, err
	}
	if err := validateAddress(tokenAddress, entity.TokenAddressKind); err != nil {
		return nil, err
	}
	token := s.tokenProvider.CreateTokenInfo(entity.CustomTokenSymbol, tokenAddress)
	return s.getTokenBalance(ctx, token, walletAddress), nil
}

// isContract probes for deployed code; any failure means a plain account.
func (s *BalanceServiceImpl) isContract(ctx context.Context, address string) bool {
	classHash, err := s.client.GetClassHashAt(ctx, address)
	if err != nil {
		s.logger.Debug("Class hash lookup failed, assuming plain account", "address", address, "error", err)
		return false
	}
	return classHash != ""
}

func (s *BalanceServiceImpl) nonce(ctx context.Context, address string) string {
	n, err := s.client.GetNonce(ctx, address)
	if err != nil || n == "" {
		s.logger.Debug("Nonce lookup failed", "address", address, "error", err)
		return defaultNonce
	}
	return n
}

// CheckAllBalances reads every registry token of walletAddress concurrently,
// together with the contract probe and the nonce. Balances keep registry order.
func (s *BalanceServiceImpl) CheckAllBalances(ctx context.Context, walletAddress string) (entity.BalanceReport, error) {
	if err := validateAddress(walletAddress, entity.WalletAddressKind); err != nil {
		return entity.BalanceReport{}, err
	}

	tokens := s.tokenProvider.GetAllTokens()
	s.logger.Debug("Checking all balances", "wallet", walletAddress, "tokens", len(tokens))

	report := entity.BalanceReport{
		Address:          walletAddress,
		FormattedAddress: utils.FormatAddress(walletAddress),
		Nonce:            defaultNonce,
	}
	results := make([]*entity.TokenBalance, len(tokens))

	g := s.newGroup()
	g.Go(func() error {
		report.IsContract = s.isContract(ctx, walletAddress)
		return nil
	})
	g.Go(func() error {
		report.Nonce = s.nonce(ctx, walletAddress)
		return nil
	})
	for i, token := range tokens {
		g.Go(func() error {
			results[i] = s.getTokenBalance(ctx, token, walletAddress)
			return nil
		})
	}
	_ = g.Wait() // branches never fail

	report.Balances = make([]entity.TokenBalance, 0, len(results))
	for _, b := range results {
		if b != nil {
			report.Balances = append(report.Balances, *b)
		}
	}

	s.logger.Info("Balance report assembled", "wallet", walletAddress, "non_zero_balances", len(report.Balances),
		"is_contract", report.IsContract)
	return report, nil
}

// GetTokenList returns the registry tokens in registry order.
func (s *BalanceServiceImpl) GetTokenList() []entity.TokenInfo {
	return s.tokenProvider.GetAllTokens()
}

// GetTokenSymbol reads symbol() of a token; UNKNOWN on any failure.
func (s *BalanceServiceImpl) GetTokenSymbol(ctx context.Context, tokenAddress string) string {
	felt, err := s.client.GetTokenSymbol(ctx, tokenAddress)
	if err != nil {
		s.logger.Debug("Token symbol unavailable", "token_address", tokenAddress, "error", err)
		return utils.UnknownSymbol
	}
	return utils.FeltToPrintable(felt)
}

// GetTokenDecimals reads decimals() of a token; the default precision on any
// failure or when the value does not fit in a uint8.
func (s *BalanceServiceImpl) GetTokenDecimals(ctx context.Context, tokenAddress string) uint8 {
	d, err := s.client.GetTokenDecimals(ctx, tokenAddress)
	if err != nil || d == nil || d.Sign() < 0 || !d.IsUint64() || d.Uint64() > 255 {
		s.logger.Debug("Token decimals unavailable", "token_address", tokenAddress, "error", err)
		return entity.DefaultDecimals
	}
	return uint8(d.Uint64())
}

// GetTokenMetadata discovers symbol and decimals of an arbitrary token.
func (s *BalanceServiceImpl) GetTokenMetadata(ctx context.Context, tokenAddress string) (entity.TokenInfo, error) {
	if err := validateAddress(tokenAddress, entity.TokenAddressKind); err != nil {
		return entity.TokenInfo{}, err
	}

	info := entity.TokenInfo{Address: tokenAddress}
	g := s.newGroup()
	g.Go(func() error {
		info.Symbol = s.GetTokenSymbol(ctx, tokenAddress)
		return nil
	})
	g.Go(func() error {
		info.Decimals = s.GetTokenDecimals(ctx, tokenAddress)
		return nil
	})
	_ = g.Wait()
	return info, nil
}
