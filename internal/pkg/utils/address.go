package utils

import "regexp"

// addressPattern matches Starknet addresses: 0x followed by up to 64 hex digits.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// IsValidAddress reports whether address can be sent to the ledger.
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}
