// Package dto holds the payload shapes shared by the MCP tools and the REST API.
package dto

import "starknet_balance_checker/internal/domain/entity"

// NoBalanceMessage is reported when a custom token query yields nothing.
const NoBalanceMessage = "No balance found for this token"

type BalanceView struct {
	Token        string `json:"token"`
	Amount       string `json:"amount"`
	TokenAddress string `json:"token_address"`
}

type BalanceReportView struct {
	Address    string        `json:"address"`
	IsContract bool          `json:"is_contract"`
	Nonce      string        `json:"nonce"`
	Balances   []BalanceView `json:"balances"`
}

type CustomTokenBalanceView struct {
	Token         string `json:"token"`
	Amount        string `json:"amount"`
	TokenAddress  string `json:"token_address"`
	WalletAddress string `json:"wallet_address"`
}

type NoBalanceView struct {
	Message      string `json:"message"`
	Address      string `json:"address"`
	TokenAddress string `json:"token_address"`
}

type TokenView struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

type TokenListView struct {
	Tokens []TokenView `json:"tokens"`
}

type TokenInfoView struct {
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
}

type ErrorView struct {
	Error string `json:"error"`
}

// NewBalanceReportView flattens a report into the check_balance payload.
func NewBalanceReportView(r entity.BalanceReport) BalanceReportView {
	view := BalanceReportView{
		Address:    r.Address,
		IsContract: r.IsContract,
		Nonce:      r.Nonce,
		Balances:   make([]BalanceView, 0, len(r.Balances)),
	}
	for _, b := range r.Balances {
		view.Balances = append(view.Balances, BalanceView{Token: b.Symbol, Amount: b.Balance, TokenAddress: b.Address})
	}
	return view
}

func NewCustomTokenBalanceView(b entity.TokenBalance, walletAddress string) CustomTokenBalanceView {
	return CustomTokenBalanceView{
		Token:         b.Symbol,
		Amount:        b.Balance,
		TokenAddress:  b.Address,
		WalletAddress: walletAddress,
	}
}

func NewNoBalanceView(walletAddress, tokenAddress string) NoBalanceView {
	return NoBalanceView{Message: NoBalanceMessage, Address: walletAddress, TokenAddress: tokenAddress}
}

func NewTokenListView(tokens []entity.TokenInfo) TokenListView {
	view := TokenListView{Tokens: make([]TokenView, 0, len(tokens))}
	for _, t := range tokens {
		view.Tokens = append(view.Tokens, TokenView{Symbol: t.Symbol, Address: t.Address})
	}
	return view
}

func NewTokenInfoView(t entity.TokenInfo) TokenInfoView {
	return TokenInfoView{Symbol: t.Symbol, Address: t.Address, Decimals: t.Decimals}
}
