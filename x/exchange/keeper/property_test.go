package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"pgregory.net/rapid"

	keepertest "github.com/nikswap/nikswap/testutil/keeper"
	"github.com/nikswap/nikswap/x/exchange/keeper"
)

// drawAmount returns a positive amount between 10^12 and 10^24 base units.
func drawAmount(t *rapid.T, label string) math.Int {
	units := rapid.Int64Range(1, 1_000_000_000_000).Draw(t, label)
	return math.NewInt(units).Mul(math.NewIntWithDecimal(1, 12))
}

// TestPoolOperationProperties runs random operation sequences and checks that
// the share supply always matches balances, reserves stay backed, and swaps
// never shrink the constant product.
func TestPoolOperationProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := keepertest.ExchangeKeeper(t)
		actors := []sdk.AccAddress{
			keepertest.TestAddr("alice"),
			keepertest.TestAddr("bob"),
			keepertest.TestAddr("carol"),
		}
		for _, a := range actors {
			f.Fund(t, a, keepertest.Ether(10_000_000), keepertest.Ether(10_000_000))
		}
		deadline := f.Deadline(time.Hour)

		_, err := f.Keeper.AddLiquidity(f.Ctx, actors[0], drawAmount(t, "seedEth"), math.ZeroInt(), drawAmount(t, "seedTokens"), deadline)
		if err != nil {
			t.Fatalf("bootstrap: %v", err)
		}

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			actor := rapid.SampledFrom(actors).Draw(t, "actor")
			op := rapid.IntRange(0, 6).Draw(t, "op")
			kBefore := f.Keeper.GetPool(f.Ctx).K()
			swapped := false

			switch op {
			case 0:
				_, err = f.Keeper.AddLiquidity(f.Ctx, actor, drawAmount(t, "eth"), math.OneInt(), keepertest.Ether(10_000_000), deadline)
			case 1:
				held := f.Keeper.ShareBalance(f.Ctx, actor)
				if !held.IsPositive() {
					continue
				}
				frac := rapid.Int64Range(1, 100).Draw(t, "pct")
				amount := held.MulRaw(frac).QuoRaw(100)
				_, _, err = f.Keeper.RemoveLiquidity(f.Ctx, actor, amount, math.ZeroInt(), math.ZeroInt(), deadline)
			case 2:
				_, err = f.Keeper.EthToTokenSwapInput(f.Ctx, actor, drawAmount(t, "ethIn"), math.OneInt(), deadline)
				swapped = true
			case 3:
				_, err = f.Keeper.TokenToEthSwapInput(f.Ctx, actor, drawAmount(t, "tokensIn"), math.OneInt(), deadline)
				swapped = true
			case 4:
				_, err = f.Keeper.EthToTokenSwapOutput(f.Ctx, actor, keepertest.Ether(10_000_000), drawAmount(t, "tokensOut"), deadline)
				swapped = true
			case 5:
				_, err = f.Keeper.TokenToEthSwapOutput(f.Ctx, actor, drawAmount(t, "ethOut"), keepertest.Ether(10_000_000), deadline)
				swapped = true
			case 6:
				to := rapid.SampledFrom(actors).Draw(t, "to")
				err = f.Keeper.TransferShares(f.Ctx, actor, to, drawAmount(t, "shares"))
			}

			if msg, broken := keeper.AllInvariants(f.Keeper)(f.Ctx); broken {
				t.Fatalf("step %d op %d: %s", i, op, msg)
			}
			if swapped && err == nil {
				if kAfter := f.Keeper.GetPool(f.Ctx).K(); kAfter.Cmp(kBefore) < 0 {
					t.Fatalf("step %d op %d: k shrank from %s to %s", i, op, kBefore, kAfter)
				}
			}
		}
	})
}

// TestAddRemoveRoundTrip checks that depositing and immediately withdrawing
// never returns more than was deposited.
func TestAddRemoveRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := keepertest.ExchangeKeeper(t)
		seeder := keepertest.TestAddr("seeder")
		lp := keepertest.TestAddr("lp")
		f.Fund(t, seeder, keepertest.Ether(10_000_000), keepertest.Ether(10_000_000))
		f.Fund(t, lp, keepertest.Ether(10_000_000), keepertest.Ether(10_000_000))
		deadline := f.Deadline(time.Hour)

		if _, err := f.Keeper.AddLiquidity(f.Ctx, seeder, drawAmount(t, "seedEth"), math.ZeroInt(), drawAmount(t, "seedTokens"), deadline); err != nil {
			t.Fatalf("bootstrap: %v", err)
		}

		ethBefore, tokensBefore := f.EthBalance(lp), f.TokenBalance(lp)
		shares, err := f.Keeper.AddLiquidity(f.Ctx, lp, drawAmount(t, "eth"), math.OneInt(), keepertest.Ether(10_000_000), deadline)
		if err != nil {
			// deposits too small to mint a share are rejected outright
			return
		}
		if _, _, err := f.Keeper.RemoveLiquidity(f.Ctx, lp, shares, math.ZeroInt(), math.ZeroInt(), deadline); err != nil {
			t.Fatalf("remove: %v", err)
		}

		if f.EthBalance(lp).GT(ethBefore) {
			t.Fatalf("eth grew from %s to %s", ethBefore, f.EthBalance(lp))
		}
		if f.TokenBalance(lp).GT(tokensBefore) {
			t.Fatalf("tokens grew from %s to %s", tokensBefore, f.TokenBalance(lp))
		}
	})
}
