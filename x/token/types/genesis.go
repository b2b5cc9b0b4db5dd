package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance holds every denom an address owns at genesis.
type Balance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

// Allowance is an approved spend limit at genesis.
type Allowance struct {
	Denom   string   `json:"denom"`
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// GenesisState defines the token module's genesis state. Supply is derived
// from the balances.
type GenesisState struct {
	Balances   []Balance   `json:"balances"`
	Allowances []Allowance `json:"allowances"`
}

// DefaultGenesis returns an empty token ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Balances:   []Balance{},
		Allowances: []Allowance{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidAddress.Wrapf("balance %q: %v", b.Address, err)
		}
		if _, dup := seen[b.Address]; dup {
			return fmt.Errorf("duplicate balance for %s", b.Address)
		}
		seen[b.Address] = struct{}{}
		if err := b.Coins.Validate(); err != nil {
			return ErrInvalidAmount.Wrapf("balance %s: %v", b.Address, err)
		}
	}
	for _, a := range gs.Allowances {
		if err := sdk.ValidateDenom(a.Denom); err != nil {
			return ErrInvalidDenom.Wrap(err.Error())
		}
		if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
			return ErrInvalidAddress.Wrapf("allowance owner %q: %v", a.Owner, err)
		}
		if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
			return ErrInvalidAddress.Wrapf("allowance spender %q: %v", a.Spender, err)
		}
		if a.Amount.IsNil() || a.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("allowance %s -> %s", a.Owner, a.Spender)
		}
	}
	return nil
}
