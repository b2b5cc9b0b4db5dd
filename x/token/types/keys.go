package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "token"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	BalanceKeyPrefix   = []byte{0x01}
	AllowanceKeyPrefix = []byte{0x02}
	SupplyKeyPrefix    = []byte{0x03}
)

// BalanceKey returns the store key for owner's balance of denom.
func BalanceKey(denom string, owner sdk.AccAddress) []byte {
	return append(DenomBalancesPrefix(denom), address.MustLengthPrefix(owner)...)
}

// DenomBalancesPrefix returns the prefix covering every balance of denom.
func DenomBalancesPrefix(denom string) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), lengthPrefixed(denom)...)
}

// AllowanceKey returns the store key for what spender may move out of owner's denom balance.
func AllowanceKey(denom string, owner, spender sdk.AccAddress) []byte {
	key := append(append([]byte{}, AllowanceKeyPrefix...), lengthPrefixed(denom)...)
	key = append(key, address.MustLengthPrefix(owner)...)
	return append(key, address.MustLengthPrefix(spender)...)
}

// SupplyKey returns the store key for denom's total supply.
func SupplyKey(denom string) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), []byte(denom)...)
}

func lengthPrefixed(denom string) []byte {
	return append([]byte{byte(len(denom))}, []byte(denom)...)
}
