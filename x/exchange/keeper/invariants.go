package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// RegisterInvariants registers all exchange invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "empty-pool", EmptyPoolInvariant(k))
}

// AllInvariants runs all invariants of the exchange module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ReservesBackedInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return EmptyPoolInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that share balances sum to the pool's total shares
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := math.ZeroInt()
		holders := 0
		err := k.IterateShareBalances(ctx, func(_ sdk.AccAddress, shares math.Int) bool {
			sum = sum.Add(shares)
			holders++
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-supply", fmt.Sprintf("iterate share balances: %v", err)), true
		}

		total := k.TotalShares(ctx)
		broken := !sum.Equal(total)
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("%d holders own %s shares, pool total is %s\n", holders, sum, total),
		), broken
	}
}

// ReservesBackedInvariant checks that the module account holds at least the
// recorded reserves. Direct transfers to the module can only add to its
// balances, so the check is >= rather than ==.
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)
		moduleAddr := k.GetModuleAddress()

		native := k.bankKeeper.GetBalance(ctx, moduleAddr, params.NativeDenom)
		if native.Amount.LT(pool.EthReserve) {
			count++
			msg += fmt.Sprintf("module balance for %s (%s) < eth reserve (%s)\n",
				params.NativeDenom, native.Amount, pool.EthReserve)
		}

		tokens := k.tokenKeeper.BalanceOf(ctx, params.TokenDenom, moduleAddr)
		if tokens.LT(pool.TokenReserve) {
			count++
			msg += fmt.Sprintf("module balance for %s (%s) < token reserve (%s)\n",
				params.TokenDenom, tokens, pool.TokenReserve)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserves-backed",
			fmt.Sprintf("found %d under-backed reserves\n%s", count, msg),
		), broken
	}
}

// EmptyPoolInvariant checks that the pool has no shares exactly when it has no
// reserves, and that a seeded pool has both reserves positive.
func EmptyPoolInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool := k.GetPool(ctx)
		err := pool.Validate()
		msg := "pool is consistent\n"
		if err != nil {
			msg = err.Error() + "\n"
		}
		return sdk.FormatInvariant(types.ModuleName, "empty-pool", msg), err != nil
	}
}
