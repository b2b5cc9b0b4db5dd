package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// AddLiquidity deposits ethIn of the native asset plus the matching token
// amount and mints shares to provider.
//
// On an unseeded pool the provider fixes the price: exactly maxTokens tokens
// are deposited and ethIn shares minted, and minShares may be zero. Once the
// pool is seeded, minShares must be positive and the token deposit is
// floor(ethIn*tokenReserve/ethReserve)+1, rounded up so that deposits can never
// dilute existing holders.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, ethIn, minShares, maxTokens math.Int, deadline uint64) (math.Int, error) {
	minted := math.ZeroInt()
	err := k.withPoolLock(ctx, "add_liquidity", func(ctx sdk.Context) error {
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}
		if ethIn.IsNil() || !ethIn.IsPositive() {
			return types.ErrZeroEth.Wrap("add liquidity requires a positive eth deposit")
		}
		if minShares.IsNil() || minShares.IsNegative() || maxTokens.IsNil() || maxTokens.IsNegative() {
			return types.ErrInvalidAmount.Wrap("min shares and max tokens must be non-negative")
		}

		pool := k.GetPool(ctx)
		var sharesToMint, tokensRequired math.Int

		if !pool.IsSeeded() {
			if maxTokens.IsZero() {
				return types.ErrZeroTokens.Wrap("initial deposit must include tokens")
			}
			sharesToMint = ethIn
			tokensRequired = maxTokens
			pool = types.Pool{
				EthReserve:   ethIn,
				TokenReserve: maxTokens,
				TotalShares:  ethIn,
			}
		} else {
			if minShares.IsZero() {
				return types.ErrZeroMinLiquidity
			}
			if pool.EthReserve.IsZero() {
				return types.ErrInvalidPoolState.Wrap("pool has shares but no eth reserve")
			}

			var err error
			sharesToMint, err = SafeMulDiv(ethIn, pool.TotalShares, pool.EthReserve)
			if err != nil {
				return err
			}
			tokensRequired, err = SafeMulDiv(ethIn, pool.TokenReserve, pool.EthReserve)
			if err != nil {
				return err
			}
			tokensRequired = tokensRequired.AddRaw(1)

			if tokensRequired.GT(maxTokens) {
				return types.ErrMaxTokensExceeded.Wrapf("deposit needs %s tokens, max is %s", tokensRequired, maxTokens)
			}
			if sharesToMint.LT(minShares) {
				return types.ErrMinLiquidityNotMet.Wrapf("deposit mints %s shares, min is %s", sharesToMint, minShares)
			}

			if pool.EthReserve, err = SafeAdd(pool.EthReserve, ethIn); err != nil {
				return err
			}
			if pool.TokenReserve, err = SafeAdd(pool.TokenReserve, tokensRequired); err != nil {
				return err
			}
			if pool.TotalShares, err = SafeAdd(pool.TotalShares, sharesToMint); err != nil {
				return err
			}
		}

		if err := k.mintShares(ctx, provider, sharesToMint); err != nil {
			return err
		}
		if err := k.setPool(ctx, pool); err != nil {
			return err
		}

		params := k.GetParams(ctx)
		if err := k.pullNative(ctx, params, provider, ethIn); err != nil {
			return err
		}
		if err := k.pullTokens(ctx, params, provider, tokensRequired); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAddLiquidity,
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyEthAmount, ethIn.String()),
				sdk.NewAttribute(types.AttributeKeyTokenAmount, tokensRequired.String()),
				sdk.NewAttribute(types.AttributeKeyShares, sharesToMint.String()),
			),
		)
		k.metrics.recordLiquidity(params, true, ethIn, tokensRequired)
		k.Logger(ctx).Debug("liquidity added", "provider", provider.String(), "eth", ethIn.String(), "tokens", tokensRequired.String(), "shares", sharesToMint.String())

		minted = sharesToMint
		return nil
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return minted, nil
}

// RemoveLiquidity burns amount of provider's shares and pays out the
// proportional part of both reserves, rounded down. Burning the last share
// returns the pool to its unseeded state.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, amount, minEth, minTokens math.Int, deadline uint64) (math.Int, math.Int, error) {
	ethOut, tokenOut := math.ZeroInt(), math.ZeroInt()
	err := k.withPoolLock(ctx, "remove_liquidity", func(ctx sdk.Context) error {
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrZeroAmount
		}
		if balance := k.ShareBalance(ctx, provider); balance.LT(amount) {
			return types.ErrBurnExceedsBalance.Wrapf("%s holds %s shares, burning %s", provider, balance, amount)
		}
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}
		if minEth.IsNil() || minEth.IsNegative() || minTokens.IsNil() || minTokens.IsNegative() {
			return types.ErrInvalidAmount.Wrap("min eth and min tokens must be non-negative")
		}

		pool := k.GetPool(ctx)
		if !pool.IsSeeded() {
			return types.ErrInvalidPoolState.Wrap("shares outstanding in an unseeded pool")
		}

		var err error
		if ethOut, err = SafeMulDiv(amount, pool.EthReserve, pool.TotalShares); err != nil {
			return err
		}
		if tokenOut, err = SafeMulDiv(amount, pool.TokenReserve, pool.TotalShares); err != nil {
			return err
		}
		if ethOut.LT(minEth) {
			return types.ErrMinEthNotMet.Wrapf("withdrawal yields %s eth, min is %s", ethOut, minEth)
		}
		if tokenOut.LT(minTokens) {
			return types.ErrMinTokensNotMet.Wrapf("withdrawal yields %s tokens, min is %s", tokenOut, minTokens)
		}

		if err := k.burnShares(ctx, provider, amount); err != nil {
			return err
		}
		if pool.TotalShares, err = SafeSub(pool.TotalShares, amount); err != nil {
			return err
		}
		if pool.EthReserve, err = SafeSub(pool.EthReserve, ethOut); err != nil {
			return err
		}
		if pool.TokenReserve, err = SafeSub(pool.TokenReserve, tokenOut); err != nil {
			return err
		}
		if err := k.setPool(ctx, pool); err != nil {
			return err
		}

		// Ledger is final; only now pay out.
		params := k.GetParams(ctx)
		if err := k.pushNative(ctx, params, provider, ethOut); err != nil {
			return err
		}
		if err := k.pushTokens(ctx, params, provider, tokenOut); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRemoveLiquidity,
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyEthAmount, ethOut.String()),
				sdk.NewAttribute(types.AttributeKeyTokenAmount, tokenOut.String()),
				sdk.NewAttribute(types.AttributeKeyShares, amount.String()),
			),
		)
		k.metrics.recordLiquidity(params, false, ethOut, tokenOut)
		k.Logger(ctx).Debug("liquidity removed", "provider", provider.String(), "eth", ethOut.String(), "tokens", tokenOut.String(), "shares", amount.String())
		return nil
	})
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return ethOut, tokenOut, nil
}
