package utils

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownSymbol is returned when a felt does not decode to any printable text.
const UnknownSymbol = "UNKNOWN"

// FormatDecimal converts an unsigned integer amount given in base 10 into a
// human-readable string, shifting the decimal point left by decimals places.
// Trailing fractional zeros are removed.
// Example: raw="1500000", decimals=6 => "1.5"
// Empty, negative or non-numeric input yields "0".
func FormatDecimal(raw string, decimals uint8) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0"
	}
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return "0"
	}
	return FormatBigInt(amount, decimals)
}

// FormatBigInt is FormatDecimal for an already parsed amount.
func FormatBigInt(amount *big.Int, decimals uint8) string {
	if amount == nil || amount.Sign() <= 0 {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// FeltToPrintable decodes a felt holding a short string. The hex form of the
// felt is read two digits at a time from the left, without padding an odd
// leading digit, and every pair becomes one character. Zero pairs are dropped.
func FeltToPrintable(felt *big.Int) string {
	if felt == nil || felt.Sign() <= 0 {
		return UnknownSymbol
	}

	digits := felt.Text(16)
	var sb strings.Builder
	for i := 0; i < len(digits); i += 2 {
		chunk := digits[i:min(i+2, len(digits))]
		b, err := strconv.ParseUint(chunk, 16, 8)
		if err != nil || b == 0 {
			continue
		}
		sb.WriteByte(byte(b))
	}
	if sb.Len() == 0 {
		return UnknownSymbol
	}
	return sb.String()
}

// FormatAddress shortens an address for display: 0x1234...abcd.
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// FormatAmount joins an amount with its token symbol.
func FormatAmount(amount, symbol string) string {
	return amount + " " + symbol
}
