package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// Keeper of the exchange store. One store holds exactly one pool.
type Keeper struct {
	storeKey    storetypes.StoreKey
	bankKeeper  types.BankKeeper
	tokenKeeper types.TokenKeeper
	metrics     *ExchangeMetrics
}

// NewKeeper creates a new exchange Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	tokenKeeper types.TokenKeeper,
) Keeper {
	return Keeper{
		storeKey:    key,
		bankKeeper:  bankKeeper,
		tokenKeeper: tokenKeeper,
		metrics:     NewExchangeMetrics(),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the exchange module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// GetModuleAddress returns the account holding the pool's reserves.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns the module parameters, falling back to the defaults before genesis.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := unmarshalJSON(bz, &params); err != nil {
		panic(fmt.Errorf("corrupt exchange params: %w", err))
	}
	return params
}

// SetParams stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := marshalJSON(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// Token returns the denom of the token this pool trades.
func (k Keeper) Token(ctx context.Context) string {
	return k.GetParams(ctx).TokenDenom
}
