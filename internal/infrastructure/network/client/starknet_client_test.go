package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"starknet_balance_checker/internal/domain/entity"
)

type rpcReq struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcErr struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fakeNode answers Starknet JSON-RPC calls through handle and records every request.
type fakeNode struct {
	mu     sync.Mutex
	calls  []rpcReq
	handle func(req rpcReq) (any, *rpcErr)
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	n.mu.Lock()
	n.calls = append(n.calls, req)
	n.mu.Unlock()

	result, rerr := n.handle(req)
	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rerr != nil {
		resp["error"] = rerr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (n *fakeNode) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestClient(t *testing.T, node *fakeNode) *StarknetClient {
	t.Helper()
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	c, err := NewStarknetClient(context.Background(), entity.NetworkDefinition{Identifier: "test", RPCURL: srv.URL}, Options{})
	if err != nil {
		t.Fatalf("NewStarknetClient: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestGetSelectorFromName(t *testing.T) {
	want := "0x2e4263afad30923c891518314c3c95dbe830a16874e8abc5777a9a20b54c76e"
	if got := GetSelectorFromName("balanceOf"); got != want {
		t.Fatalf("selector(balanceOf)=%s, want %s", got, want)
	}
}

func TestNormalizeFelt(t *testing.T) {
	got, err := NormalizeFelt("0x049D36570D4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7")
	if err != nil {
		t.Fatalf("NormalizeFelt: %v", err)
	}
	if got != "0x49d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7" {
		t.Fatalf("NormalizeFelt=%s", got)
	}
	if got, _ := NormalizeFelt("0x000"); got != "0x0" {
		t.Fatalf("NormalizeFelt(0x000)=%s", got)
	}
	if _, err := NormalizeFelt("0x"); err == nil {
		t.Fatalf("expected error for empty felt")
	}
	if _, err := NormalizeFelt("0xzz"); err == nil {
		t.Fatalf("expected error for malformed felt")
	}
}

func TestGetTokenBalance(t *testing.T) {
	token := "0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8"
	wallet := "0x0001"

	node := &fakeNode{handle: func(req rpcReq) (any, *rpcErr) {
		if req.Method != "starknet_call" {
			return nil, &rpcErr{Code: -32601, Message: "method not found"}
		}
		var call functionCall
		if err := json.Unmarshal(req.Params[0], &call); err != nil {
			return nil, &rpcErr{Code: -32602, Message: err.Error()}
		}
		var block string
		_ = json.Unmarshal(req.Params[1], &block)
		if block != "latest" {
			return nil, &rpcErr{Code: -32602, Message: "bad block id"}
		}
		if call.ContractAddress != "0x53c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8" {
			return nil, &rpcErr{Code: 20, Message: "contract not found"}
		}
		if call.EntryPointSelector != GetSelectorFromName("balanceOf") {
			return nil, &rpcErr{Code: 21, Message: "entry point not found"}
		}
		if len(call.Calldata) != 1 || call.Calldata[0] != "0x1" {
			return nil, &rpcErr{Code: 40, Message: "bad calldata"}
		}
		// low = 12345678, high = 1  =>  2^128 + 12345678
		return []string{"0xbc614e", "0x1"}, nil
	}}
	c := newTestClient(t, node)

	got, err := c.GetTokenBalance(context.Background(), token, wallet)
	if err != nil {
		t.Fatalf("GetTokenBalance: %v", err)
	}
	if got.String() != "340282366920938463463374607431780557134" {
		t.Fatalf("balance=%s", got)
	}
}

func TestGetTokenBalance_RPCError(t *testing.T) {
	node := &fakeNode{handle: func(req rpcReq) (any, *rpcErr) {
		return nil, &rpcErr{Code: 20, Message: "Contract not found"}
	}}
	c := newTestClient(t, node)

	if _, err := c.GetTokenBalance(context.Background(), "0x1", "0x2"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetTokenBalance_EmptyResult(t *testing.T) {
	node := &fakeNode{handle: func(req rpcReq) (any, *rpcErr) { return []string{}, nil }}
	c := newTestClient(t, node)

	if _, err := c.GetTokenBalance(context.Background(), "0x1", "0x2"); err == nil {
		t.Fatalf("expected error for empty result")
	}
}

func TestMetadataCalls(t *testing.T) {
	node := &fakeNode{handle: func(req rpcReq) (any, *rpcErr) {
		switch req.Method {
		case "starknet_getClassHashAt":
			var block, addr string
			_ = json.Unmarshal(req.Params[0], &block)
			_ = json.Unmarshal(req.Params[1], &addr)
			if block != "latest" || addr != "0xabc" {
				return nil, &rpcErr{Code: 20, Message: "Contract not found"}
			}
			return "0x1234", nil
		case "starknet_getNonce":
			return "0x1f", nil
		case "starknet_call":
			var call functionCall
			_ = json.Unmarshal(req.Params[0], &call)
			switch call.EntryPointSelector {
			case GetSelectorFromName("symbol"):
				return []string{"0x455448"}, nil
			case GetSelectorFromName("decimals"):
				return []string{"0x12"}, nil
			}
		}
		return nil, &rpcErr{Code: -32601, Message: "method not found"}
	}}
	c := newTestClient(t, node)
	ctx := context.Background()

	hash, err := c.GetClassHashAt(ctx, "0x0abc")
	if err != nil || hash != "0x1234" {
		t.Fatalf("GetClassHashAt=%q, %v", hash, err)
	}
	if _, err := c.GetClassHashAt(ctx, "0xdef"); err == nil {
		t.Fatalf("expected error for undeployed address")
	}

	nonce, err := c.GetNonce(ctx, "0xabc")
	if err != nil || nonce != "0x1f" {
		t.Fatalf("GetNonce=%v, %v", nonce, err)
	}

	symbol, err := c.GetTokenSymbol(ctx, "0x1")
	if err != nil || symbol.Text(16) != "455448" {
		t.Fatalf("GetTokenSymbol=%v, %v", symbol, err)
	}

	decimals, err := c.GetTokenDecimals(ctx, "0x1")
	if err != nil || decimals.Int64() != 18 {
		t.Fatalf("GetTokenDecimals=%v, %v", decimals, err)
	}
}

func TestRateLimitedClient(t *testing.T) {
	node := &fakeNode{handle: func(req rpcReq) (any, *rpcErr) { return "0x0", nil }}
	srv := httptest.NewServer(node)
	defer srv.Close()

	c, err := NewStarknetClient(context.Background(), entity.NetworkDefinition{Identifier: "test", RPCURL: srv.URL},
		Options{HTTPClient: srv.Client(), RateLimit: 1000, BurstLimit: 5})
	if err != nil {
		t.Fatalf("NewStarknetClient: %v", err)
	}
	defer c.Close()

	for i := 0; i < 10; i++ {
		if _, err := c.GetNonce(context.Background(), "0x1"); err != nil {
			t.Fatalf("GetNonce #%d: %v", i, err)
		}
	}
	if got := node.count(); got != 10 {
		t.Fatalf("calls=%d, want 10", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.GetNonce(ctx, "0x1"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestNewStarknetClient_NoURL(t *testing.T) {
	if _, err := NewStarknetClient(context.Background(), entity.NetworkDefinition{Identifier: "x"}, Options{}); err == nil {
		t.Fatalf("expected error without RPC URL")
	}
}
