package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// GetEthToTokenInputPrice returns the tokens ethSold would buy at current reserves.
func (k Keeper) GetEthToTokenInputPrice(ctx context.Context, ethSold math.Int) (math.Int, error) {
	pool := k.GetPool(ctx)
	return types.GetInputPrice(ethSold, pool.EthReserve, pool.TokenReserve)
}

// GetEthToTokenOutputPrice returns the eth needed to buy exactly tokensBought.
func (k Keeper) GetEthToTokenOutputPrice(ctx context.Context, tokensBought math.Int) (math.Int, error) {
	pool := k.GetPool(ctx)
	return types.GetOutputPrice(tokensBought, pool.EthReserve, pool.TokenReserve)
}

// GetTokenToEthInputPrice returns the eth tokensSold would buy at current reserves.
func (k Keeper) GetTokenToEthInputPrice(ctx context.Context, tokensSold math.Int) (math.Int, error) {
	pool := k.GetPool(ctx)
	return types.GetInputPrice(tokensSold, pool.TokenReserve, pool.EthReserve)
}

// GetTokenToEthOutputPrice returns the tokens needed to buy exactly ethBought.
func (k Keeper) GetTokenToEthOutputPrice(ctx context.Context, ethBought math.Int) (math.Int, error) {
	pool := k.GetPool(ctx)
	return types.GetOutputPrice(ethBought, pool.TokenReserve, pool.EthReserve)
}

// EthToTokenSwapInput sells exactly ethIn for as many tokens as the pool
// gives, failing if that is fewer than minTokensBought.
func (k Keeper) EthToTokenSwapInput(ctx context.Context, buyer sdk.AccAddress, ethIn, minTokensBought math.Int, deadline uint64) (math.Int, error) {
	bought := math.ZeroInt()
	err := k.withPoolLock(ctx, "eth_to_token_swap_input", func(ctx sdk.Context) error {
		if ethIn.IsNil() || !ethIn.IsPositive() {
			return types.ErrZeroEth
		}
		if minTokensBought.IsNil() || !minTokensBought.IsPositive() {
			return types.ErrZeroMinTokens
		}

		pool := k.GetPool(ctx)
		tokensBought, err := types.GetInputPrice(ethIn, pool.EthReserve, pool.TokenReserve)
		if err != nil {
			return err
		}
		if tokensBought.LT(minTokensBought) {
			return types.ErrBoughtLessThanMin.Wrapf("%s eth buys %s tokens, min is %s", ethIn, tokensBought, minTokensBought)
		}
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}

		bought = tokensBought
		return k.settleSwap(ctx, buyer, pool, ethToToken, ethIn, tokensBought)
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return bought, nil
}

// EthToTokenSwapOutput buys exactly tokensBought, spending at most maxEth.
// Only the eth actually needed is collected.
func (k Keeper) EthToTokenSwapOutput(ctx context.Context, buyer sdk.AccAddress, maxEth, tokensBought math.Int, deadline uint64) (math.Int, error) {
	sold := math.ZeroInt()
	err := k.withPoolLock(ctx, "eth_to_token_swap_output", func(ctx sdk.Context) error {
		if tokensBought.IsNil() || !tokensBought.IsPositive() {
			return types.ErrZeroAmount.Wrap("tokens bought must be positive")
		}
		if maxEth.IsNil() || !maxEth.IsPositive() {
			return types.ErrZeroEth
		}

		pool := k.GetPool(ctx)
		ethSold, err := types.GetOutputPrice(tokensBought, pool.EthReserve, pool.TokenReserve)
		if err != nil {
			return err
		}
		if ethSold.GT(maxEth) {
			return types.ErrSoldMoreThanMax.Wrapf("%s tokens cost %s eth, max is %s", tokensBought, ethSold, maxEth)
		}
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}

		sold = ethSold
		return k.settleSwap(ctx, buyer, pool, ethToToken, ethSold, tokensBought)
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return sold, nil
}

// TokenToEthSwapInput sells exactly tokensSold for at least minEth.
func (k Keeper) TokenToEthSwapInput(ctx context.Context, seller sdk.AccAddress, tokensSold, minEth math.Int, deadline uint64) (math.Int, error) {
	bought := math.ZeroInt()
	err := k.withPoolLock(ctx, "token_to_eth_swap_input", func(ctx sdk.Context) error {
		if tokensSold.IsNil() || !tokensSold.IsPositive() {
			return types.ErrZeroAmount.Wrap("tokens sold must be positive")
		}
		if minEth.IsNil() || !minEth.IsPositive() {
			return types.ErrZeroMinEth
		}

		pool := k.GetPool(ctx)
		ethBought, err := types.GetInputPrice(tokensSold, pool.TokenReserve, pool.EthReserve)
		if err != nil {
			return err
		}
		if ethBought.LT(minEth) {
			return types.ErrEthBoughtLessThanMin.Wrapf("%s tokens buy %s eth, min is %s", tokensSold, ethBought, minEth)
		}
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}

		bought = ethBought
		return k.settleSwap(ctx, seller, pool, tokenToEth, tokensSold, ethBought)
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return bought, nil
}

// TokenToEthSwapOutput buys exactly ethBought, selling at most maxTokens.
func (k Keeper) TokenToEthSwapOutput(ctx context.Context, seller sdk.AccAddress, ethBought, maxTokens math.Int, deadline uint64) (math.Int, error) {
	sold := math.ZeroInt()
	err := k.withPoolLock(ctx, "token_to_eth_swap_output", func(ctx sdk.Context) error {
		if ethBought.IsNil() || !ethBought.IsPositive() {
			return types.ErrZeroAmount.Wrap("eth bought must be positive")
		}
		if maxTokens.IsNil() || !maxTokens.IsPositive() {
			return types.ErrZeroTokens
		}

		pool := k.GetPool(ctx)
		tokensSold, err := types.GetOutputPrice(ethBought, pool.TokenReserve, pool.EthReserve)
		if err != nil {
			return err
		}
		if tokensSold.GT(maxTokens) {
			return types.ErrSoldMoreThanMax.Wrapf("%s eth costs %s tokens, max is %s", ethBought, tokensSold, maxTokens)
		}
		if err := checkDeadline(ctx, deadline); err != nil {
			return err
		}

		sold = tokensSold
		return k.settleSwap(ctx, seller, pool, tokenToEth, tokensSold, ethBought)
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return sold, nil
}

type swapDirection string

const (
	ethToToken swapDirection = "eth_to_token"
	tokenToEth swapDirection = "token_to_eth"
)

// settleSwap commits the new reserves for a priced trade, then collects the
// input from trader and pays out the output.
func (k Keeper) settleSwap(ctx sdk.Context, trader sdk.AccAddress, pool types.Pool, dir swapDirection, amountIn, amountOut math.Int) error {
	params := k.GetParams(ctx)
	kBefore := pool.K()

	var err error
	switch dir {
	case ethToToken:
		if pool.EthReserve, err = SafeAdd(pool.EthReserve, amountIn); err != nil {
			return err
		}
		if pool.TokenReserve, err = SafeSub(pool.TokenReserve, amountOut); err != nil {
			return err
		}
	case tokenToEth:
		if pool.TokenReserve, err = SafeAdd(pool.TokenReserve, amountIn); err != nil {
			return err
		}
		if pool.EthReserve, err = SafeSub(pool.EthReserve, amountOut); err != nil {
			return err
		}
	}

	if pool.K().Cmp(kBefore) < 0 {
		return types.ErrInvalidPoolState.Wrapf("swap would shrink k from %s to %s", kBefore, pool.K())
	}
	if err := k.setPool(ctx, pool); err != nil {
		return err
	}

	var event sdk.Event
	switch dir {
	case ethToToken:
		if err := k.pullNative(ctx, params, trader, amountIn); err != nil {
			return err
		}
		if err := k.pushTokens(ctx, params, trader, amountOut); err != nil {
			return err
		}
		event = sdk.NewEvent(
			types.EventTypeTokenPurchase,
			sdk.NewAttribute(types.AttributeKeyBuyer, trader.String()),
			sdk.NewAttribute(types.AttributeKeyEthAmount, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, amountOut.String()),
		)
	case tokenToEth:
		if err := k.pullTokens(ctx, params, trader, amountIn); err != nil {
			return err
		}
		if err := k.pushNative(ctx, params, trader, amountOut); err != nil {
			return err
		}
		event = sdk.NewEvent(
			types.EventTypeEthPurchase,
			sdk.NewAttribute(types.AttributeKeyBuyer, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyEthAmount, amountOut.String()),
		)
	}

	ctx.EventManager().EmitEvent(event)
	k.metrics.recordSwap(params, dir, amountIn, amountOut)
	k.Logger(ctx).Debug("swap settled", "trader", trader.String(), "direction", string(dir), "in", amountIn.String(), "out", amountOut.String())
	return nil
}
