package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// InitGenesis restores the pool, share balances and share allowances.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid exchange genesis: %w", err)
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.setPool(ctx, gs.Pool); err != nil {
		return err
	}
	for _, b := range gs.ShareBalances {
		holder := sdk.MustAccAddressFromBech32(b.Address)
		if err := k.setInt(ctx, types.ShareBalanceKey(holder), b.Shares); err != nil {
			return err
		}
	}
	for _, a := range gs.ShareAllowances {
		owner := sdk.MustAccAddressFromBech32(a.Owner)
		spender := sdk.MustAccAddressFromBech32(a.Spender)
		if err := k.setInt(ctx, types.ShareAllowanceKey(owner, spender), a.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the exchange module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	gs.Params = k.GetParams(ctx)
	gs.Pool = k.GetPool(ctx)

	err := k.IterateShareBalances(ctx, func(holder sdk.AccAddress, shares math.Int) bool {
		gs.ShareBalances = append(gs.ShareBalances, types.ShareBalance{
			Address: holder.String(),
			Shares:  shares,
		})
		return false
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateShareAllowances(ctx, func(owner, spender sdk.AccAddress, amount math.Int) bool {
		gs.ShareAllowances = append(gs.ShareAllowances, types.ShareAllowance{
			Owner:   owner.String(),
			Spender: spender.String(),
			Amount:  amount,
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
