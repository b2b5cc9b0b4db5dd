package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultNativeDenom is the denom of the native value asset
	DefaultNativeDenom = "wei"

	// DefaultTokenDenom is the denom of the token traded against the native asset
	DefaultTokenDenom = "unik"
)

// Params fixes the two assets a pool trades. They never change after genesis.
type Params struct {
	NativeDenom string `json:"native_denom"`
	TokenDenom  string `json:"token_denom"`
}

// DefaultParams returns default parameters for the exchange module
func DefaultParams() Params {
	return Params{
		NativeDenom: DefaultNativeDenom,
		TokenDenom:  DefaultTokenDenom,
	}
}

// Validate checks both denoms are well formed and distinct.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return ErrInvalidParams.Wrapf("native denom: %v", err)
	}
	if err := sdk.ValidateDenom(p.TokenDenom); err != nil {
		return ErrInvalidParams.Wrapf("token denom: %v", err)
	}
	if p.NativeDenom == p.TokenDenom {
		return ErrInvalidParams.Wrapf("native and token denom are both %q", p.NativeDenom)
	}
	return nil
}
