package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/token/types"
)

// Keeper tracks fungible balances and allowances for any number of denoms.
type Keeper struct {
	storeKey storetypes.StoreKey
	hooks    types.TokenHooks
}

// NewKeeper creates a new token Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{storeKey: key}
}

// SetHooks installs the transfer hooks. It may only be called once.
func (k *Keeper) SetHooks(hooks types.TokenHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set token hooks twice")
	}
	k.hooks = hooks
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

func (k Keeper) getInt(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt token store entry %X: %w", key, err))
	}
	return v
}

func (k Keeper) setInt(ctx context.Context, key []byte, v math.Int) {
	store := k.getStore(ctx)
	if v.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := v.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// BalanceOf returns owner's balance of denom.
func (k Keeper) BalanceOf(ctx context.Context, denom string, owner sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.BalanceKey(denom, owner))
}

// TotalSupply returns the amount of denom in existence.
func (k Keeper) TotalSupply(ctx context.Context, denom string) math.Int {
	return k.getInt(ctx, types.SupplyKey(denom))
}

// Allowance returns what spender may still move out of owner's denom balance.
func (k Keeper) Allowance(ctx context.Context, denom string, owner, spender sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.AllowanceKey(denom, owner, spender))
}

// Mint creates amount of denom and credits it to to.
func (k Keeper) Mint(ctx context.Context, denom string, to sdk.AccAddress, amount math.Int) error {
	if err := validateTransfer(denom, amount); err != nil {
		return err
	}
	if to.Empty() {
		return types.ErrInvalidAddress.Wrap("mint to the empty address")
	}

	k.setInt(ctx, types.BalanceKey(denom, to), k.BalanceOf(ctx, denom, to).Add(amount))
	k.setInt(ctx, types.SupplyKey(denom), k.TotalSupply(ctx, denom).Add(amount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Transfer moves amount of denom from one account to another. A transfer
// larger than the sender's balance fails with ErrInsufficientBalance before
// anything is written.
func (k Keeper) Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	if err := validateTransfer(denom, amount); err != nil {
		return err
	}
	if from.Empty() || to.Empty() {
		return types.ErrInvalidAddress.Wrap("transfer from or to the empty address")
	}

	fromBalance := k.BalanceOf(ctx, denom, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s%s, needs %s%s", from, fromBalance, denom, amount, denom)
	}

	k.setInt(ctx, types.BalanceKey(denom, from), fromBalance.Sub(amount))
	k.setInt(ctx, types.BalanceKey(denom, to), k.BalanceOf(ctx, denom, to).Add(amount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	if k.hooks != nil {
		return k.hooks.AfterTransfer(ctx, denom, from, to, amount)
	}
	return nil
}

// Approve sets the amount of denom spender may move out of owner's balance.
func (k Keeper) Approve(ctx context.Context, denom string, owner, spender sdk.AccAddress, amount math.Int) error {
	if err := validateTransfer(denom, amount); err != nil {
		return err
	}
	if owner.Empty() || spender.Empty() {
		return types.ErrInvalidAddress.Wrap("approve from or to the empty address")
	}

	k.setInt(ctx, types.AllowanceKey(denom, owner, spender), amount)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproval,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom moves amount of denom out of from's balance on spender's
// authority, consuming allowance.
func (k Keeper) TransferFrom(ctx context.Context, denom string, spender, from, to sdk.AccAddress, amount math.Int) error {
	if err := validateTransfer(denom, amount); err != nil {
		return err
	}

	allowance := k.Allowance(ctx, denom, from, spender)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("%s may spend %s%s of %s, needs %s%s", spender, allowance, denom, from, amount, denom)
	}
	if err := k.Transfer(ctx, denom, from, to, amount); err != nil {
		return err
	}

	k.setInt(ctx, types.AllowanceKey(denom, from, spender), allowance.Sub(amount))
	return nil
}

// GetBalance returns addr's balance of denom as a coin.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.BalanceOf(ctx, denom, addr))
}

// SendCoins transfers every coin in amt. It lets the token ledger stand in for
// the bank module when moving the native asset.
func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return types.ErrInvalidAmount.Wrapf("invalid coins %s", amt)
	}
	for _, coin := range amt {
		if err := k.Transfer(ctx, coin.Denom, fromAddr, toAddr, coin.Amount); err != nil {
			return err
		}
	}
	return nil
}

func validateTransfer(denom string, amount math.Int) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrap(err.Error())
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("amount must be non-negative, got %s", amount)
	}
	return nil
}
