package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// The helpers below are the only places the pool touches the outside world.
// They run after the ledger for the operation has been written.

// pullNative moves amount of the native asset from account into the pool.
func (k Keeper) pullNative(ctx context.Context, params types.Params, from sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))
	if err := k.bankKeeper.SendCoins(ctx, from, k.GetModuleAddress(), coins); err != nil {
		return errorsmod.Wrapf(err, "collect %s from %s", coins, from)
	}
	return nil
}

// pushNative pays amount of the native asset out of the pool.
func (k Keeper) pushNative(ctx context.Context, params types.Params, to sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), to, coins); err != nil {
		k.Logger(ctx).Error("native payout failed", "to", to.String(), "amount", coins.String(), "error", err)
		return errorsmod.Wrapf(err, "pay %s to %s", coins, to)
	}
	return nil
}

// pullTokens collects amount tokens from account using the allowance it
// granted the pool.
func (k Keeper) pullTokens(ctx context.Context, params types.Params, from sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	pool := k.GetModuleAddress()
	if err := k.tokenKeeper.TransferFrom(ctx, params.TokenDenom, pool, from, pool, amount); err != nil {
		return errorsmod.Wrapf(err, "collect %s%s from %s", amount, params.TokenDenom, from)
	}
	return nil
}

// pushTokens pays amount tokens out of the pool.
func (k Keeper) pushTokens(ctx context.Context, params types.Params, to sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	if err := k.tokenKeeper.Transfer(ctx, params.TokenDenom, k.GetModuleAddress(), to, amount); err != nil {
		k.Logger(ctx).Error("token payout failed", "to", to.String(), "amount", amount.String(), "error", err)
		return errorsmod.Wrapf(err, "pay %s%s to %s", amount, params.TokenDenom, to)
	}
	return nil
}
