package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareBalance is a holder's liquidity share balance in genesis.
type ShareBalance struct {
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// ShareAllowance is an approved share allowance in genesis.
type ShareAllowance struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// GenesisState defines the exchange module's genesis state.
type GenesisState struct {
	Params          Params           `json:"params"`
	Pool            Pool             `json:"pool"`
	ShareBalances   []ShareBalance   `json:"share_balances"`
	ShareAllowances []ShareAllowance `json:"share_allowances"`
}

// DefaultGenesis returns the default genesis state: an unseeded pool.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		Pool:            EmptyPool(),
		ShareBalances:   []ShareBalance{},
		ShareAllowances: []ShareAllowance{},
	}
}

// Validate ensures the genesis state is well-formed and the share balances add
// up to the pool's share supply.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Pool.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.ShareBalances))
	sum := math.ZeroInt()
	for _, b := range gs.ShareBalances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidAddress.Wrapf("share holder %q: %v", b.Address, err)
		}
		if _, dup := seen[b.Address]; dup {
			return fmt.Errorf("duplicate share balance for %s", b.Address)
		}
		seen[b.Address] = struct{}{}
		if b.Shares.IsNil() || !b.Shares.IsPositive() {
			return ErrInvalidAmount.Wrapf("share balance for %s must be positive", b.Address)
		}
		sum = sum.Add(b.Shares)
	}
	if !sum.Equal(gs.Pool.TotalShares) {
		return ErrInvalidPoolState.Wrapf("share balances sum to %s, total shares is %s", sum, gs.Pool.TotalShares)
	}

	for _, a := range gs.ShareAllowances {
		if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
			return ErrInvalidAddress.Wrapf("allowance owner %q: %v", a.Owner, err)
		}
		if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
			return ErrInvalidAddress.Wrapf("allowance spender %q: %v", a.Spender, err)
		}
		if a.Amount.IsNil() || a.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("allowance %s -> %s must be non-negative", a.Owner, a.Spender)
		}
	}
	return nil
}
