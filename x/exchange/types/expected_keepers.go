package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper moves the native value asset. The signatures match the Cosmos SDK
// bank keeper so either that keeper or the token module's adapter satisfies it.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// TokenKeeper is the fungible token the pool trades. Transfer and TransferFrom
// must fail, without side effects, when balance or allowance is insufficient.
type TokenKeeper interface {
	BalanceOf(ctx context.Context, denom string, owner sdk.AccAddress) math.Int
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, denom string, spender, from, to sdk.AccAddress, amount math.Int) error
}
