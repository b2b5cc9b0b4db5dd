package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// SetPoolUnchecked writes pool without validation so tests can corrupt state.
func (k Keeper) SetPoolUnchecked(ctx context.Context, pool types.Pool) {
	bz, err := marshalJSON(pool)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(types.PoolKey, bz)
}

// SetShareBalance overwrites holder's share balance.
func (k Keeper) SetShareBalance(ctx context.Context, holder sdk.AccAddress, shares math.Int) error {
	return k.setInt(ctx, types.ShareBalanceKey(holder), shares)
}
