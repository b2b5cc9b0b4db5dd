package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/token/types"
)

// InitGenesis mints the genesis balances and restores allowances.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid token genesis: %w", err)
	}

	for _, b := range gs.Balances {
		addr := sdk.MustAccAddressFromBech32(b.Address)
		for _, coin := range b.Coins {
			if err := k.Mint(ctx, coin.Denom, addr, coin.Amount); err != nil {
				return err
			}
		}
	}
	for _, a := range gs.Allowances {
		owner := sdk.MustAccAddressFromBech32(a.Owner)
		spender := sdk.MustAccAddressFromBech32(a.Spender)
		k.setInt(ctx, types.AllowanceKey(a.Denom, owner, spender), a.Amount)
	}
	return nil
}

// ExportGenesis returns the token module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()
	store := k.getStore(ctx)

	byAddr := make(map[string]sdk.Coins)
	var order []string
	balances := storetypes.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	for ; balances.Valid(); balances.Next() {
		denom, rest := splitLengthPrefixed(balances.Key()[len(types.BalanceKeyPrefix):])
		addr, _ := splitLengthPrefixed(rest)
		var amount math.Int
		if err := amount.Unmarshal(balances.Value()); err != nil {
			panic(err)
		}
		bech := sdk.AccAddress(addr).String()
		if _, ok := byAddr[bech]; !ok {
			order = append(order, bech)
		}
		byAddr[bech] = byAddr[bech].Add(sdk.NewCoin(string(denom), amount))
	}
	balances.Close()

	for _, addr := range order {
		gs.Balances = append(gs.Balances, types.Balance{Address: addr, Coins: byAddr[addr]})
	}

	allowances := storetypes.KVStorePrefixIterator(store, types.AllowanceKeyPrefix)
	defer allowances.Close()
	for ; allowances.Valid(); allowances.Next() {
		denom, rest := splitLengthPrefixed(allowances.Key()[len(types.AllowanceKeyPrefix):])
		owner, rest := splitLengthPrefixed(rest)
		spender, _ := splitLengthPrefixed(rest)
		var amount math.Int
		if err := amount.Unmarshal(allowances.Value()); err != nil {
			panic(err)
		}
		gs.Allowances = append(gs.Allowances, types.Allowance{
			Denom:   string(denom),
			Owner:   sdk.AccAddress(owner).String(),
			Spender: sdk.AccAddress(spender).String(),
			Amount:  amount,
		})
	}
	return gs
}

func splitLengthPrefixed(bz []byte) ([]byte, []byte) {
	n := int(bz[0])
	return bz[1 : 1+n], bz[1+n:]
}
