package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// withPoolLock runs fn as one atomic pool operation. The lock marker is written
// to the parent store before branching, so any call that re-enters the keeper
// from inside fn (through a transfer hook) sees it and is rejected. fn runs
// against a cached branch with its own event manager; the branch and its
// events reach the parent context only when fn succeeds.
func (k Keeper) withPoolLock(ctx context.Context, operation string, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.acquireReentrancyLock(sdkCtx, operation); err != nil {
		return err
	}
	defer k.releaseReentrancyLock(sdkCtx)

	cms := sdkCtx.MultiStore().CacheMultiStore()
	events := sdk.NewEventManager()
	branch := sdkCtx.WithMultiStore(cms).WithEventManager(events)

	if err := fn(branch); err != nil {
		k.metrics.recordRejection(operation, err)
		k.Logger(sdkCtx).Debug("pool operation rejected", "operation", operation, "error", err)
		return err
	}

	cms.Write()
	sdkCtx.EventManager().EmitEvents(events.Events())
	return nil
}

// acquireReentrancyLock marks the pool as busy with operation.
func (k Keeper) acquireReentrancyLock(ctx sdk.Context, operation string) error {
	store := k.getStore(ctx)
	if held := store.Get(types.ReentrancyLockKey); held != nil {
		return types.ErrReentrancy.Wrapf("%s called while %s is in progress", operation, string(held))
	}
	store.Set(types.ReentrancyLockKey, []byte(operation))
	return nil
}

// releaseReentrancyLock clears the busy marker.
func (k Keeper) releaseReentrancyLock(ctx sdk.Context) {
	k.getStore(ctx).Delete(types.ReentrancyLockKey)
}

// checkDeadline rejects a call made after deadline (unix seconds).
func checkDeadline(ctx sdk.Context, deadline uint64) error {
	now := ctx.BlockTime().Unix()
	if now < 0 || uint64(now) > deadline {
		return types.ErrDeadlinePassed.Wrapf("block time %d is after deadline %d", now, deadline)
	}
	return nil
}
