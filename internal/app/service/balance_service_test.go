package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"starknet_balance_checker/internal/app/provider"
	"starknet_balance_checker/internal/domain/entity"
	"starknet_balance_checker/internal/pkg/logger"
)

const testWallet = "0x0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var errNode = errors.New("node unavailable")

// fakeLedger serves balances keyed by token address; tokens without an entry fail.
type fakeLedger struct {
	mu        sync.Mutex
	balances  map[string]*big.Int
	delays    map[string]time.Duration
	classHash string
	nonce     string
	symbol    *big.Int
	decimals  *big.Int
	calls     atomic.Int32
	order     []string
}

func (f *fakeLedger) GetTokenBalance(ctx context.Context, tokenAddress string, walletAddress string) (*big.Int, error) {
	f.calls.Add(1)
	if d := f.delays[tokenAddress]; d > 0 {
		time.Sleep(d)
	}
	f.mu.Lock()
	f.order = append(f.order, tokenAddress)
	f.mu.Unlock()
	if b, ok := f.balances[tokenAddress]; ok {
		return b, nil
	}
	return nil, errNode
}

func (f *fakeLedger) GetTokenSymbol(ctx context.Context, tokenAddress string) (*big.Int, error) {
	f.calls.Add(1)
	if f.symbol == nil {
		return nil, errNode
	}
	return f.symbol, nil
}

func (f *fakeLedger) GetTokenDecimals(ctx context.Context, tokenAddress string) (*big.Int, error) {
	f.calls.Add(1)
	if f.decimals == nil {
		return nil, errNode
	}
	return f.decimals, nil
}

func (f *fakeLedger) GetClassHashAt(ctx context.Context, address string) (string, error) {
	f.calls.Add(1)
	if f.classHash == "" {
		return "", errNode
	}
	return f.classHash, nil
}

func (f *fakeLedger) GetNonce(ctx context.Context, address string) (string, error) {
	f.calls.Add(1)
	if f.nonce == "" {
		return "", errNode
	}
	return f.nonce, nil
}

func (f *fakeLedger) Definition() entity.NetworkDefinition {
	return entity.NetworkDefinition{Identifier: "fake"}
}

func newTestService(ledger *fakeLedger, maxConcurrent int) *BalanceServiceImpl {
	return NewBalanceService(ledger, provider.NewTokenProvider(), logger.NewNop(), maxConcurrent)
}

func tokenAddress(t *testing.T, symbol string) string {
	t.Helper()
	for _, tok := range provider.NewTokenProvider().GetAllTokens() {
		if tok.Symbol == symbol {
			return tok.Address
		}
	}
	t.Fatalf("symbol %s not in registry", symbol)
	return ""
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big int %q", s)
	}
	return v
}

func TestCheckAllBalances_InvalidAddress(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(ledger, 0)

	for _, addr := range []string{"123", "", "0x", "0xg1"} {
		_, err := svc.CheckAllBalances(context.Background(), addr)
		if !errors.Is(err, entity.ErrInvalidAddress) {
			t.Fatalf("CheckAllBalances(%q) err=%v, want ErrInvalidAddress", addr, err)
		}
	}
	if n := ledger.calls.Load(); n != 0 {
		t.Fatalf("remote calls=%d, want 0", n)
	}
}

func TestCheckAllBalances_AllRemoteCallsFail(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(ledger, 0)

	report, err := svc.CheckAllBalances(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("CheckAllBalances: %v", err)
	}
	if report.Balances == nil || len(report.Balances) != 0 {
		t.Fatalf("balances=%v, want empty non-nil slice", report.Balances)
	}
	if report.IsContract {
		t.Fatalf("is_contract=true, want false")
	}
	if report.Nonce != "0" {
		t.Fatalf("nonce=%q, want 0", report.Nonce)
	}
	if report.Address != testWallet || report.FormattedAddress != "0x0123...cdef" {
		t.Fatalf("unexpected address fields %q %q", report.Address, report.FormattedAddress)
	}
	// 9 tokens + class hash + nonce
	if n := ledger.calls.Load(); n != 11 {
		t.Fatalf("remote calls=%d, want 11", n)
	}
}

func TestCheckAllBalances_RegistryOrderAndFiltering(t *testing.T) {
	eth := tokenAddress(t, "ETH")
	usdc := tokenAddress(t, "USDC")
	wbtc := tokenAddress(t, "WBTC")
	strk := tokenAddress(t, "STRK")

	ledger := &fakeLedger{
		balances: map[string]*big.Int{
			eth:  mustBig(t, "1000000000000000000"),
			strk: big.NewInt(0),
			usdc: big.NewInt(1500000),
			wbtc: big.NewInt(5),
		},
		// ETH finishes last so completion order differs from registry order.
		delays:    map[string]time.Duration{eth: 50 * time.Millisecond},
		classHash: "0x5b5e9f6f6fb7d2647d81a8b2c2b99cbc9cc9d03d705576d7061812324dca5c0",
		nonce:     "0x7",
	}
	for _, maxConcurrent := range []int{0, 1, 3} {
		svc := newTestService(ledger, maxConcurrent)
		report, err := svc.CheckAllBalances(context.Background(), testWallet)
		if err != nil {
			t.Fatalf("CheckAllBalances: %v", err)
		}

		want := []entity.TokenBalance{
			{Symbol: "ETH", Address: eth, Balance: "1", Decimals: 18, RawBalance: "1000000000000000000"},
			{Symbol: "USDC", Address: usdc, Balance: "1.5", Decimals: 6, RawBalance: "1500000"},
			{Symbol: "WBTC", Address: wbtc, Balance: "0.00000005", Decimals: 8, RawBalance: "5"},
		}
		if len(report.Balances) != len(want) {
			t.Fatalf("limit %d: balances=%+v", maxConcurrent, report.Balances)
		}
		for i := range want {
			if report.Balances[i] != want[i] {
				t.Fatalf("limit %d: balances[%d]=%+v, want %+v", maxConcurrent, i, report.Balances[i], want[i])
			}
		}
		if !report.IsContract || report.Nonce != "0x7" {
			t.Fatalf("limit %d: is_contract=%v nonce=%q", maxConcurrent, report.IsContract, report.Nonce)
		}
	}
}

func TestCheckCustomTokenBalance(t *testing.T) {
	const token = "0x0abc"
	ctx := context.Background()

	t.Run("zero balance is absent", func(t *testing.T) {
		svc := newTestService(&fakeLedger{balances: map[string]*big.Int{token: big.NewInt(0)}}, 0)
		got, err := svc.CheckCustomTokenBalance(ctx, testWallet, token)
		if err != nil || got != nil {
			t.Fatalf("got %+v, %v; want nil, nil", got, err)
		}
	})

	t.Run("remote failure is absent", func(t *testing.T) {
		svc := newTestService(&fakeLedger{}, 0)
		got, err := svc.CheckCustomTokenBalance(ctx, testWallet, token)
		if err != nil || got != nil {
			t.Fatalf("got %+v, %v; want nil, nil", got, err)
		}
	})

	t.Run("custom token uses default decimals", func(t *testing.T) {
		svc := newTestService(&fakeLedger{balances: map[string]*big.Int{token: big.NewInt(2500000)}}, 0)
		got, err := svc.CheckCustomTokenBalance(ctx, testWallet, token)
		if err != nil || got == nil {
			t.Fatalf("got %+v, %v", got, err)
		}
		want := entity.TokenBalance{Symbol: "CUSTOM", Address: token, Balance: "0.0000000000025", Decimals: 18, RawBalance: "2500000"}
		if *got != want {
			t.Fatalf("got %+v, want %+v", *got, want)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		ledger := &fakeLedger{}
		svc := newTestService(ledger, 0)

		_, err := svc.CheckCustomTokenBalance(ctx, "wallet", token)
		var addrErr *entity.InvalidAddressError
		if !errors.As(err, &addrErr) || addrErr.Kind != entity.WalletAddressKind {
			t.Fatalf("err=%v, want wallet InvalidAddressError", err)
		}
		_, err = svc.CheckCustomTokenBalance(ctx, testWallet, "token")
		if !errors.As(err, &addrErr) || addrErr.Kind != entity.TokenAddressKind {
			t.Fatalf("err=%v, want token InvalidAddressError", err)
		}
		if ledger.calls.Load() != 0 {
			t.Fatalf("remote calls issued for invalid input")
		}
	})
}

func TestCheckTokenBalance_RegistryToken(t *testing.T) {
	usdt := tokenAddress(t, "USDT")
	svc := newTestService(&fakeLedger{balances: map[string]*big.Int{usdt: big.NewInt(42)}}, 0)

	info := provider.NewTokenProvider().CreateTokenInfo("USDT", usdt)
	got, err := svc.CheckTokenBalance(context.Background(), testWallet, info)
	if err != nil || got == nil {
		t.Fatalf("got %+v, %v", got, err)
	}
	if got.Balance != "0.000042" || got.Symbol != "USDT" {
		t.Fatalf("unexpected balance %+v", got)
	}
}

func TestGetTokenMetadata(t *testing.T) {
	ctx := context.Background()
	symbol, _ := new(big.Int).SetString("55534443", 16) // "USDC"

	svc := newTestService(&fakeLedger{symbol: symbol, decimals: big.NewInt(6)}, 0)
	info, err := svc.GetTokenMetadata(ctx, "0x1")
	if err != nil {
		t.Fatalf("GetTokenMetadata: %v", err)
	}
	if info != (entity.TokenInfo{Symbol: "USDC", Address: "0x1", Decimals: 6}) {
		t.Fatalf("info=%+v", info)
	}

	svc = newTestService(&fakeLedger{}, 0)
	info, err = svc.GetTokenMetadata(ctx, "0x1")
	if err != nil {
		t.Fatalf("GetTokenMetadata: %v", err)
	}
	if info.Symbol != "UNKNOWN" || info.Decimals != 18 {
		t.Fatalf("fallbacks not applied: %+v", info)
	}

	svc = newTestService(&fakeLedger{decimals: big.NewInt(300)}, 0)
	if d := svc.GetTokenDecimals(ctx, "0x1"); d != 18 {
		t.Fatalf("out of range decimals=%d, want 18", d)
	}

	if _, err := svc.GetTokenMetadata(ctx, "nope"); !errors.Is(err, entity.ErrInvalidAddress) {
		t.Fatalf("err=%v, want ErrInvalidAddress", err)
	}
}

func TestGetTokenList(t *testing.T) {
	svc := newTestService(&fakeLedger{}, 0)
	tokens := svc.GetTokenList()
	if len(tokens) != 9 || tokens[0].Symbol != "ETH" || tokens[8].Symbol != "BROTHER" {
		t.Fatalf("unexpected token list %+v", tokens)
	}
}
