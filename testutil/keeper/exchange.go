package keeper

import (
	"math/big"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
	tokenkeeper "github.com/nikswap/nikswap/x/token/keeper"
	tokentypes "github.com/nikswap/nikswap/x/token/types"
)

// GenesisTime is the block time of every fixture context.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// ExchangeFixture bundles an exchange keeper with the token ledger that backs
// both of its assets.
type ExchangeFixture struct {
	Ctx      sdk.Context
	Keeper   keeper.Keeper
	Token    *tokenkeeper.Keeper
	Params   types.Params
	StoreKey *storetypes.KVStoreKey
}

// ExchangeKeeper creates a test exchange keeper. The token keeper stands in for
// the bank module for the native asset as well.
func ExchangeKeeper(t require.TestingT) *ExchangeFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	tokenKey := storetypes.NewKVStoreKey(tokentypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(tokenKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	tk := tokenkeeper.NewKeeper(tokenKey)
	k := keeper.NewKeeper(storeKey, tk, tk)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	gs := types.DefaultGenesis()
	require.NoError(t, k.InitGenesis(ctx, *gs))

	return &ExchangeFixture{
		Ctx:      ctx,
		Keeper:   k,
		Token:    tk,
		Params:   gs.Params,
		StoreKey: storeKey,
	}
}

// TestAddr derives a stable account address from name.
func TestAddr(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

// Fund mints native and token balances to addr and lets the pool pull any
// amount of addr's tokens.
func (f *ExchangeFixture) Fund(t require.TestingT, addr sdk.AccAddress, eth, tokens math.Int) {
	if eth.IsPositive() {
		require.NoError(t, f.Token.Mint(f.Ctx, f.Params.NativeDenom, addr, eth))
	}
	if tokens.IsPositive() {
		require.NoError(t, f.Token.Mint(f.Ctx, f.Params.TokenDenom, addr, tokens))
	}
	f.ApproveAll(t, addr)
}

// ApproveAll grants the pool an effectively unlimited token allowance.
func (f *ExchangeFixture) ApproveAll(t require.TestingT, addr sdk.AccAddress) {
	unlimited := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))
	require.NoError(t, f.Token.Approve(f.Ctx, f.Params.TokenDenom, addr, f.Keeper.GetModuleAddress(), unlimited))
}

// EthBalance returns addr's native balance.
func (f *ExchangeFixture) EthBalance(addr sdk.AccAddress) math.Int {
	return f.Token.BalanceOf(f.Ctx, f.Params.NativeDenom, addr)
}

// TokenBalance returns addr's token balance.
func (f *ExchangeFixture) TokenBalance(addr sdk.AccAddress) math.Int {
	return f.Token.BalanceOf(f.Ctx, f.Params.TokenDenom, addr)
}

// Deadline returns a deadline d after the fixture's block time.
func (f *ExchangeFixture) Deadline(d time.Duration) uint64 {
	return uint64(f.Ctx.BlockTime().Add(d).Unix())
}

// Ether returns n * 10^18 base units.
func Ether(n int64) math.Int {
	return math.NewIntWithDecimal(n, 18)
}
