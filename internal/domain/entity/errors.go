package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is matched by every InvalidAddressError.
var ErrInvalidAddress = errors.New("invalid address")

// AddressKind tells which argument of a call carried the bad address.
type AddressKind string

const (
	WalletAddressKind AddressKind = "Starknet"
	TokenAddressKind  AddressKind = "token"
)

// InvalidAddressError is returned when an address fails validation.
type InvalidAddressError struct {
	Kind    AddressKind
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("Invalid %s address: %s", e.Kind, e.Address)
}

// Is reports whether target is ErrInvalidAddress.
func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}
