package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "exchange"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKey                 = []byte{0x01} // singleton pool reserves and share supply
	ParamsKey               = []byte{0x02} // module parameters
	ShareBalanceKeyPrefix   = []byte{0x03} // prefix for per-holder share balances
	ShareAllowanceKeyPrefix = []byte{0x04} // prefix for share allowances
	ReentrancyLockKey       = []byte{0x05} // held while a pool operation is executing
)

// ShareBalanceKey returns the store key for a holder's share balance.
func ShareBalanceKey(holder sdk.AccAddress) []byte {
	return append(append([]byte{}, ShareBalanceKeyPrefix...), address.MustLengthPrefix(holder)...)
}

// ShareAllowanceKey returns the store key for the shares spender may move on behalf of owner.
func ShareAllowanceKey(owner, spender sdk.AccAddress) []byte {
	key := append(append([]byte{}, ShareAllowanceKeyPrefix...), address.MustLengthPrefix(owner)...)
	return append(key, address.MustLengthPrefix(spender)...)
}

// ShareAllowanceKeyPrefixForOwner returns the prefix covering every allowance granted by owner.
func ShareAllowanceKeyPrefixForOwner(owner sdk.AccAddress) []byte {
	return append(append([]byte{}, ShareAllowanceKeyPrefix...), address.MustLengthPrefix(owner)...)
}
