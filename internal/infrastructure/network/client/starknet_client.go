package client

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"net/http"
	"time"

	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
	"starknet_balance_checker/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/time/rate"
)

const blockTagLatest = "latest"

// ERC20 entry points read by the client.
const (
	entryPointBalanceOf = "balanceOf"
	entryPointSymbol    = "symbol"
	entryPointDecimals  = "decimals"
)

// functionCall is the FUNCTION_CALL object of starknet_call.
type functionCall struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

// Options tunes the transport. The zero value dials with http.DefaultClient and no throttling.
type Options struct {
	HTTPClient *http.Client
	// RateLimit is the maximum number of requests per second; 0 disables throttling.
	RateLimit  float64
	BurstLimit int
}

// StarknetClient implements port.LedgerClient over Starknet JSON-RPC v0.7.
type StarknetClient struct {
	rpcClient *rpc.Client
	netDef    entity.NetworkDefinition
	limiter   *rate.Limiter
}

// NewStarknetClient creates a client for the given network definition.
func NewStarknetClient(ctx context.Context, netDef entity.NetworkDefinition, opts Options) (*StarknetClient, error) {
	if netDef.RPCURL == "" {
		return nil, fmt.Errorf("network %s has no RPC URL", netDef.Identifier)
	}

	var dialOpts []rpc.ClientOption
	if opts.HTTPClient != nil {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(opts.HTTPClient))
	}
	rpcClient, err := rpc.DialOptions(ctx, netDef.RPCURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", netDef.RPCURL, err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.BurstLimit
		if burst <= 0 {
			burst = int(math.Max(1, opts.RateLimit))
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &StarknetClient{rpcClient: rpcClient, netDef: netDef, limiter: limiter}, nil
}

var _ port.LedgerClient = (*StarknetClient)(nil)

// Close releases the underlying transport.
func (c *StarknetClient) Close() {
	c.rpcClient.Close()
}

// Definition returns the network definition for this client.
func (c *StarknetClient) Definition() entity.NetworkDefinition {
	return c.netDef
}

func (c *StarknetClient) call(ctx context.Context, result any, method string, args ...any) (err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", method, err)
	}
	start := time.Now()
	defer func() { metrics.ObserveRPC(method, start, err) }()

	if err := c.rpcClient.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (c *StarknetClient) callContract(ctx context.Context, contractAddress, entryPoint string, calldata ...string) ([]string, error) {
	contract, err := NormalizeFelt(contractAddress)
	if err != nil {
		return nil, fmt.Errorf("contract address: %w", err)
	}
	req := functionCall{
		ContractAddress:    contract,
		EntryPointSelector: GetSelectorFromName(entryPoint),
		Calldata:           make([]string, 0, len(calldata)),
	}
	for _, arg := range calldata {
		felt, err := NormalizeFelt(arg)
		if err != nil {
			return nil, fmt.Errorf("calldata: %w", err)
		}
		req.Calldata = append(req.Calldata, felt)
	}

	var out []string
	if err := c.call(ctx, &out, "starknet_call", req, blockTagLatest); err != nil {
		return nil, fmt.Errorf("%s on %s: %w", entryPoint, contract, err)
	}
	return out, nil
}

func (c *StarknetClient) callSingleFelt(ctx context.Context, contractAddress, entryPoint string) (*big.Int, error) {
	out, err := c.callContract(ctx, contractAddress, entryPoint)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s on %s returned no data", entryPoint, contractAddress)
	}
	return ParseFelt(out[0])
}

// GetTokenBalance calls balanceOf(walletAddress) on the token contract.
func (c *StarknetClient) GetTokenBalance(ctx context.Context, tokenAddress string, walletAddress string) (*big.Int, error) {
	out, err := c.callContract(ctx, tokenAddress, entryPointBalanceOf, walletAddress)
	if err != nil {
		return nil, err
	}
	balance, err := decodeUint256(out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode balanceOf result for %s: %w", tokenAddress, err)
	}
	return balance, nil
}

// GetTokenSymbol returns the raw felt of symbol().
func (c *StarknetClient) GetTokenSymbol(ctx context.Context, tokenAddress string) (*big.Int, error) {
	return c.callSingleFelt(ctx, tokenAddress, entryPointSymbol)
}

// GetTokenDecimals returns the value of decimals().
func (c *StarknetClient) GetTokenDecimals(ctx context.Context, tokenAddress string) (*big.Int, error) {
	return c.callSingleFelt(ctx, tokenAddress, entryPointDecimals)
}

// GetClassHashAt returns the class hash of the contract deployed at address.
func (c *StarknetClient) GetClassHashAt(ctx context.Context, address string) (string, error) {
	addr, err := NormalizeFelt(address)
	if err != nil {
		return "", err
	}
	var classHash string
	if err := c.call(ctx, &classHash, "starknet_getClassHashAt", blockTagLatest, addr); err != nil {
		return "", err
	}
	if classHash == "" {
		return "", fmt.Errorf("no class hash at %s", addr)
	}
	return classHash, nil
}

// GetNonce returns the nonce of the account at address, e.g. "0x1a".
func (c *StarknetClient) GetNonce(ctx context.Context, address string) (string, error) {
	addr, err := NormalizeFelt(address)
	if err != nil {
		return "", err
	}
	var nonce string
	if err := c.call(ctx, &nonce, "starknet_getNonce", blockTagLatest, addr); err != nil {
		return "", err
	}
	return NormalizeFelt(nonce)
}
