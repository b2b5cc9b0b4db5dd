package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON(bz []byte, v any) error {
	return json.Unmarshal(bz, v)
}

// GetPool returns the pool's reserves and share supply. A store that has never
// been seeded reads as the empty pool.
func (k Keeper) GetPool(ctx context.Context) types.Pool {
	bz := k.getStore(ctx).Get(types.PoolKey)
	if bz == nil {
		return types.EmptyPool()
	}
	var pool types.Pool
	if err := unmarshalJSON(bz, &pool); err != nil {
		panic(fmt.Errorf("corrupt pool state: %w", err))
	}
	return pool
}

// setPool stores the pool. Only the liquidity and swap engines call it.
func (k Keeper) setPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	bz, err := marshalJSON(pool)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.PoolKey, bz)
	k.metrics.recordPool(k.GetParams(ctx), pool)
	return nil
}

// EthReserve returns the native asset held by the pool.
func (k Keeper) EthReserve(ctx context.Context) math.Int {
	return k.GetPool(ctx).EthReserve
}

// TokenReserve returns the token amount held by the pool.
func (k Keeper) TokenReserve(ctx context.Context) math.Int {
	return k.GetPool(ctx).TokenReserve
}

// TotalShares returns the outstanding liquidity share supply.
func (k Keeper) TotalShares(ctx context.Context) math.Int {
	return k.GetPool(ctx).TotalShares
}

// ShareBalance returns holder's liquidity shares.
func (k Keeper) ShareBalance(ctx context.Context, holder sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.ShareBalanceKey(holder))
}

// ShareAllowance returns the shares spender may still move on owner's behalf.
func (k Keeper) ShareAllowance(ctx context.Context, owner, spender sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.ShareAllowanceKey(owner, spender))
}

func (k Keeper) getInt(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt exchange store entry %X: %w", key, err))
	}
	return v
}

// setInt stores v under key, deleting the entry when v is zero.
func (k Keeper) setInt(ctx context.Context, key []byte, v math.Int) error {
	store := k.getStore(ctx)
	if v.IsZero() {
		store.Delete(key)
		return nil
	}
	bz, err := v.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// mintShares credits amount new shares to holder. The caller updates the
// pool's TotalShares in the same transition.
func (k Keeper) mintShares(ctx context.Context, holder sdk.AccAddress, amount math.Int) error {
	balance, err := k.ShareBalance(ctx, holder).SafeAdd(amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("share balance of %s: %v", holder, err)
	}
	if err := k.setInt(ctx, types.ShareBalanceKey(holder), balance); err != nil {
		return err
	}
	emitShareTransfer(ctx, nil, holder, amount)
	return nil
}

// burnShares destroys amount of holder's shares.
func (k Keeper) burnShares(ctx context.Context, holder sdk.AccAddress, amount math.Int) error {
	balance := k.ShareBalance(ctx, holder)
	if balance.LT(amount) {
		return types.ErrBurnExceedsBalance.Wrapf("%s holds %s shares, burning %s", holder, balance, amount)
	}
	if err := k.setInt(ctx, types.ShareBalanceKey(holder), balance.Sub(amount)); err != nil {
		return err
	}
	emitShareTransfer(ctx, holder, nil, amount)
	return nil
}

// moveShares moves shares between holders without touching reserves or supply.
func (k Keeper) moveShares(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("share amount %s", amount)
	}
	if from.Empty() || to.Empty() {
		return types.ErrInvalidAddress.Wrap("share transfer from or to the empty address")
	}

	fromBalance := k.ShareBalance(ctx, from)
	if fromBalance.LT(amount) {
		return types.ErrTransferExceedsBalance.Wrapf("%s holds %s shares, sending %s", from, fromBalance, amount)
	}
	if err := k.setInt(ctx, types.ShareBalanceKey(from), fromBalance.Sub(amount)); err != nil {
		return err
	}
	if err := k.setInt(ctx, types.ShareBalanceKey(to), k.ShareBalance(ctx, to).Add(amount)); err != nil {
		return err
	}
	emitShareTransfer(ctx, from, to, amount)
	return nil
}

// TransferShares moves amount of from's liquidity shares to to.
func (k Keeper) TransferShares(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	return k.withPoolLock(ctx, "transfer_shares", func(ctx sdk.Context) error {
		return k.moveShares(ctx, from, to, amount)
	})
}

// ApproveShares lets spender move up to amount of owner's shares.
func (k Keeper) ApproveShares(ctx context.Context, owner, spender sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("allowance %s", amount)
	}
	if owner.Empty() || spender.Empty() {
		return types.ErrInvalidAddress.Wrap("approve from or to the empty address")
	}
	return k.withPoolLock(ctx, "approve_shares", func(ctx sdk.Context) error {
		if err := k.setInt(ctx, types.ShareAllowanceKey(owner, spender), amount); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeApproval,
				sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
				sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// TransferSharesFrom moves from's shares to to on spender's authority.
func (k Keeper) TransferSharesFrom(ctx context.Context, spender, from, to sdk.AccAddress, amount math.Int) error {
	return k.withPoolLock(ctx, "transfer_shares_from", func(ctx sdk.Context) error {
		allowance := k.ShareAllowance(ctx, from, spender)
		if allowance.LT(amount) {
			return types.ErrInsufficientAllowance.Wrapf("%s may move %s of %s's shares, needs %s", spender, allowance, from, amount)
		}
		if err := k.moveShares(ctx, from, to, amount); err != nil {
			return err
		}
		return k.setInt(ctx, types.ShareAllowanceKey(from, spender), allowance.Sub(amount))
	})
}

// IterateShareBalances calls cb for every non-zero share balance.
func (k Keeper) IterateShareBalances(ctx context.Context, cb func(holder sdk.AccAddress, shares math.Int) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.ShareBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		holder := holderFromKey(iterator.Key()[len(types.ShareBalanceKeyPrefix):])
		if cb(holder, shares) {
			break
		}
	}
	return nil
}

// IterateShareAllowances calls cb for every non-zero share allowance.
func (k Keeper) IterateShareAllowances(ctx context.Context, cb func(owner, spender sdk.AccAddress, amount math.Int) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.ShareAllowanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		rest := iterator.Key()[len(types.ShareAllowanceKeyPrefix):]
		owner := holderFromKey(rest)
		spender := holderFromKey(rest[1+len(owner):])
		if cb(owner, spender, amount) {
			break
		}
	}
	return nil
}

// holderFromKey decodes a length-prefixed address at the start of bz.
func holderFromKey(bz []byte) sdk.AccAddress {
	n := int(bz[0])
	return sdk.AccAddress(bz[1 : 1+n])
}

func emitShareTransfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}
