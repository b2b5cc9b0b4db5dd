package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nikswap/nikswap/testutil/keeper"
	"github.com/nikswap/nikswap/x/token/keeper"
	"github.com/nikswap/nikswap/x/token/types"
)

const denom = "unik"

func setup(t *testing.T) (*keeper.Keeper, sdk.Context, sdk.AccAddress, sdk.AccAddress) {
	f := keepertest.ExchangeKeeper(t)
	alice, bob := keepertest.TestAddr("alice"), keepertest.TestAddr("bob")
	require.NoError(t, f.Token.Mint(f.Ctx, denom, alice, math.NewInt(1000)))
	return f.Token, f.Ctx, alice, bob
}

func TestMintAndTransfer(t *testing.T) {
	k, ctx, alice, bob := setup(t)
	require.Equal(t, "1000", k.TotalSupply(ctx, denom).String())

	require.NoError(t, k.Transfer(ctx, denom, alice, bob, math.NewInt(400)))
	require.Equal(t, "600", k.BalanceOf(ctx, denom, alice).String())
	require.Equal(t, "400", k.BalanceOf(ctx, denom, bob).String())
	require.Equal(t, "1000", k.TotalSupply(ctx, denom).String())

	err := k.Transfer(ctx, denom, alice, bob, math.NewInt(601))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Contains(t, err.Error(), "transfer amount exceeds balance")
	require.Equal(t, "600", k.BalanceOf(ctx, denom, alice).String())

	require.ErrorIs(t, k.Transfer(ctx, denom, alice, bob, math.NewInt(-1)), types.ErrInvalidAmount)
	require.ErrorIs(t, k.Transfer(ctx, "!", alice, bob, math.NewInt(1)), types.ErrInvalidDenom)
	require.ErrorIs(t, k.Transfer(ctx, denom, alice, nil, math.NewInt(1)), types.ErrInvalidAddress)
}

func TestApproveAndTransferFrom(t *testing.T) {
	k, ctx, alice, bob := setup(t)
	carol := keepertest.TestAddr("carol")

	err := k.TransferFrom(ctx, denom, bob, alice, carol, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	require.NoError(t, k.Approve(ctx, denom, alice, bob, math.NewInt(300)))
	require.Equal(t, "300", k.Allowance(ctx, denom, alice, bob).String())

	require.NoError(t, k.TransferFrom(ctx, denom, bob, alice, carol, math.NewInt(200)))
	require.Equal(t, "100", k.Allowance(ctx, denom, alice, bob).String())
	require.Equal(t, "200", k.BalanceOf(ctx, denom, carol).String())

	err = k.TransferFrom(ctx, denom, bob, alice, carol, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
	require.Equal(t, "100", k.Allowance(ctx, denom, alice, bob).String())
}

func TestSendCoinsAdapter(t *testing.T) {
	k, ctx, alice, bob := setup(t)
	require.NoError(t, k.Mint(ctx, "wei", alice, math.NewInt(50)))

	coins := sdk.NewCoins(sdk.NewInt64Coin("wei", 20), sdk.NewInt64Coin(denom, 30))
	require.NoError(t, k.SendCoins(ctx, alice, bob, coins))
	require.Equal(t, "20wei", k.GetBalance(ctx, bob, "wei").String())
	require.Equal(t, "30", k.BalanceOf(ctx, denom, bob).String())

	err := k.SendCoins(ctx, alice, bob, sdk.NewCoins(sdk.NewInt64Coin("wei", 31)))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

type recordingHooks struct {
	seen []string
	fail error
}

func (h *recordingHooks) AfterTransfer(_ context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	h.seen = append(h.seen, denom+":"+amount.String())
	return h.fail
}

func TestTransferHooks(t *testing.T) {
	k, ctx, alice, bob := setup(t)
	hooks := &recordingHooks{}
	k.SetHooks(types.NewMultiTokenHooks(hooks, nil))

	require.NoError(t, k.Transfer(ctx, denom, alice, bob, math.NewInt(5)))
	require.Equal(t, []string{"unik:5"}, hooks.seen)

	hooks.fail = types.ErrInvalidAmount
	require.ErrorIs(t, k.Transfer(ctx, denom, alice, bob, math.NewInt(5)), types.ErrInvalidAmount)

	require.Panics(t, func() { k.SetHooks(hooks) })
}

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx, alice, bob := setup(t)
	require.NoError(t, k.Mint(ctx, "wei", alice, math.NewInt(7)))
	require.NoError(t, k.Approve(ctx, denom, alice, bob, math.NewInt(9)))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Balances, 1)
	require.Equal(t, "1000unik,7wei", exported.Balances[0].Coins.String())
	require.Len(t, exported.Allowances, 1)

	f := keepertest.ExchangeKeeper(t)
	require.NoError(t, f.Token.InitGenesis(f.Ctx, *exported))
	require.Equal(t, "1000", f.Token.BalanceOf(f.Ctx, denom, alice).String())
	require.Equal(t, "1000", f.Token.TotalSupply(f.Ctx, denom).String())
	require.Equal(t, "9", f.Token.Allowance(f.Ctx, denom, alice, bob).String())
}
