package client

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// selectorMask keeps the low 250 bits of a Keccak256 digest (starknet_keccak).
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// uint256 values come back as two felts: low and high 128-bit limbs.
const uint256LimbBits = 128

// GetSelectorFromName returns the entry point selector of a Cairo function name.
func GetSelectorFromName(name string) string {
	h := new(big.Int).SetBytes(crypto.Keccak256([]byte(name)))
	h.And(h, selectorMask)
	return hexutil.EncodeBig(h)
}

// ParseFelt parses a hex felt, with or without the 0x prefix. Leading zeros are allowed.
func ParseFelt(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if digits == "" {
		return nil, fmt.Errorf("empty felt %q", s)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("malformed felt %q", s)
	}
	return v, nil
}

// NormalizeFelt rewrites a felt in the canonical form nodes expect (no leading zeros).
func NormalizeFelt(s string) (string, error) {
	v, err := ParseFelt(s)
	if err != nil {
		return "", err
	}
	return hexutil.EncodeBig(v), nil
}

// decodeUint256 joins the [low, high] limbs of a Cairo Uint256. A single felt
// is accepted as-is for contracts returning a plain felt.
func decodeUint256(felts []string) (*big.Int, error) {
	if len(felts) == 0 {
		return nil, fmt.Errorf("empty uint256 response")
	}
	low, err := ParseFelt(felts[0])
	if err != nil {
		return nil, fmt.Errorf("uint256 low limb: %w", err)
	}
	if len(felts) == 1 {
		return low, nil
	}
	high, err := ParseFelt(felts[1])
	if err != nil {
		return nil, fmt.Errorf("uint256 high limb: %w", err)
	}
	return new(big.Int).Or(new(big.Int).Lsh(high, uint256LimbBits), low), nil
}
