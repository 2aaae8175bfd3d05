package entity

// TokenBalance represents a nonzero amount of a token held by a wallet.
// A missing TokenBalance means the balance is zero or could not be read.
type TokenBalance struct {
	Symbol     string `json:"symbol"`
	Address    string `json:"address"`
	Balance    string `json:"balance"`
	Decimals   uint8  `json:"decimals"`
	RawBalance string `json:"rawBalance"`
}

// BalanceReport aggregates every registry token balance of one wallet.
type BalanceReport struct {
	Address          string         `json:"address"`
	FormattedAddress string         `json:"formattedAddress"`
	IsContract       bool           `json:"isContract"`
	Nonce            string         `json:"nonce"`
	Balances         []TokenBalance `json:"balances"`
}
