package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/nikswap/nikswap/x/token/types"
)

func TestGenesisValidate(t *testing.T) {
	alice := sdk.AccAddress([]byte("alice_______________")).String()
	bob := sdk.AccAddress([]byte("bob_________________")).String()

	tests := []struct {
		name    string
		gs      types.GenesisState
		wantErr bool
	}{
		{"default", *types.DefaultGenesis(), false},
		{
			"balances and allowance",
			types.GenesisState{
				Balances:   []types.Balance{{Address: alice, Coins: sdk.NewCoins(sdk.NewInt64Coin("unik", 5))}},
				Allowances: []types.Allowance{{Denom: "unik", Owner: alice, Spender: bob, Amount: math.NewInt(1)}},
			},
			false,
		},
		{
			"duplicate balance",
			types.GenesisState{Balances: []types.Balance{{Address: alice}, {Address: alice}}},
			true,
		},
		{
			"bad allowance denom",
			types.GenesisState{Allowances: []types.Allowance{{Denom: "1", Owner: alice, Spender: bob, Amount: math.NewInt(1)}}},
			true,
		},
		{
			"bad spender",
			types.GenesisState{Allowances: []types.Allowance{{Denom: "unik", Owner: alice, Spender: "x", Amount: math.NewInt(1)}}},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBalanceKeysAreDisjointPerDenom(t *testing.T) {
	owner := sdk.AccAddress([]byte("owner_______________"))
	a := types.BalanceKey("ab", owner)
	b := types.BalanceKey("abc", owner)
	require.NotEqual(t, a, b)
	require.False(t, bytes.HasPrefix(b, types.DenomBalancesPrefix("ab")))
}
