package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenHooks lets other modules observe balance movements. AfterTransfer runs
// once the balances are updated and may call back into other keepers; an error
// fails the transfer.
type TokenHooks interface {
	AfterTransfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
}

// MultiTokenHooks combines multiple token hooks into one.
type MultiTokenHooks []TokenHooks

// NewMultiTokenHooks creates a new MultiTokenHooks from a list of hooks.
func NewMultiTokenHooks(hooks ...TokenHooks) MultiTokenHooks {
	return hooks
}

// AfterTransfer calls AfterTransfer on all registered hooks.
func (h MultiTokenHooks) AfterTransfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterTransfer(ctx, denom, from, to, amount); err != nil {
			return err
		}
	}
	return nil
}
