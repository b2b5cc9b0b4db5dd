package keeper_test

import (
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	keepertest "github.com/nikswap/nikswap/testutil/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

func mustInt(s string) math.Int {
	v, ok := math.NewIntFromString(s)
	if !ok {
		panic("bad int " + s)
	}
	return v
}

func (suite *KeeperTestSuite) TestPriceQueries() {
	oneEther := keepertest.Ether(1)

	tests := []struct {
		name  string
		quote func(math.Int) (math.Int, error)
		want  math.Int
	}{
		{"eth to token input", func(a math.Int) (math.Int, error) { return suite.keeper.GetEthToTokenInputPrice(suite.ctx, a) }, mustInt("1662497915624478906")},
		{"eth to token output", func(a math.Int) (math.Int, error) { return suite.keeper.GetEthToTokenOutputPrice(suite.ctx, a) }, mustInt("557227237267357629")},
		{"token to eth input", func(a math.Int) (math.Int, error) { return suite.keeper.GetTokenToEthInputPrice(suite.ctx, a) }, mustInt("453305446940074565")},
		{"token to eth output", func(a math.Int) (math.Int, error) { return suite.keeper.GetTokenToEthOutputPrice(suite.ctx, a) }, mustInt("2507522567703109328")},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got, err := tc.quote(oneEther)
			suite.Require().NoError(err)
			suite.Require().Equal(tc.want.String(), got.String())

			_, err = tc.quote(math.ZeroInt())
			suite.Require().ErrorIs(err, types.ErrZeroAmount)
		})
	}
}

func (suite *KeeperTestSuite) TestPriceQueriesOnEmptyPool() {
	f := keepertest.ExchangeKeeper(suite.T())
	_, err := f.Keeper.GetEthToTokenInputPrice(f.Ctx, keepertest.Ether(1))
	suite.Require().ErrorIs(err, types.ErrInsufficientLiquidity)
	_, err = f.Keeper.GetTokenToEthOutputPrice(f.Ctx, keepertest.Ether(1))
	suite.Require().ErrorIs(err, types.ErrInsufficientLiquidity)
}

func (suite *KeeperTestSuite) TestEthToTokenSwapInput() {
	ethSold := keepertest.Ether(1)
	purchased, err := suite.keeper.GetEthToTokenInputPrice(suite.ctx, ethSold)
	suite.Require().NoError(err)
	suite.Require().Equal("1662497915624478906", purchased.String())

	suite.f.Fund(suite.T(), suite.addr1, keepertest.Ether(100), math.ZeroInt())
	initialEth := suite.f.EthBalance(suite.addr1)

	_, err = suite.keeper.EthToTokenSwapInput(suite.ctx, suite.addr1, math.ZeroInt(), math.OneInt(), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrZeroEth)
	suite.Require().Contains(err.Error(), "must send eth")
	_, err = suite.keeper.EthToTokenSwapInput(suite.ctx, suite.addr1, ethSold, math.ZeroInt(), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrZeroMinTokens)
	_, err = suite.keeper.EthToTokenSwapInput(suite.ctx, suite.addr1, ethSold, purchased.AddRaw(1), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrBoughtLessThanMin)
	_, err = suite.keeper.EthToTokenSwapInput(suite.ctx, suite.addr1, ethSold, purchased, 1)
	suite.Require().ErrorIs(err, types.ErrDeadlinePassed)

	ctx := suite.ctx.WithEventManager(sdk.NewEventManager())
	bought, err := suite.keeper.EthToTokenSwapInput(ctx, suite.addr1, ethSold, math.OneInt(), suite.deadline)
	suite.Require().NoError(err)
	suite.Require().Equal(purchased.String(), bought.String())

	eth, tokens := suite.moduleBalances()
	suite.Require().Equal(ethReserve.Add(ethSold).String(), eth.String())
	suite.Require().Equal(tokenReserve.Sub(purchased).String(), tokens.String())
	suite.Require().Equal(purchased.String(), suite.f.TokenBalance(suite.addr1).String())
	suite.Require().Equal(initialEth.Sub(ethSold).String(), suite.f.EthBalance(suite.addr1).String())

	var purchase sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypeTokenPurchase {
			purchase = ev
		}
	}
	suite.Require().Equal(types.EventTypeTokenPurchase, purchase.Type)
	attr, ok := purchase.GetAttribute(types.AttributeKeyTokenAmount)
	suite.Require().True(ok)
	suite.Require().Equal(purchased.String(), attr.Value)
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestEthToTokenSwapOutput() {
	tokensBought := keepertest.Ether(1)
	suite.f.Fund(suite.T(), suite.addr1, keepertest.Ether(100), math.ZeroInt())
	initialEth := suite.f.EthBalance(suite.addr1)

	cost, err := suite.keeper.GetEthToTokenOutputPrice(suite.ctx, tokensBought)
	suite.Require().NoError(err)

	_, err = suite.keeper.EthToTokenSwapOutput(suite.ctx, suite.addr1, cost.SubRaw(1), tokensBought, suite.deadline)
	suite.Require().ErrorIs(err, types.ErrSoldMoreThanMax)
	_, err = suite.keeper.EthToTokenSwapOutput(suite.ctx, suite.addr1, keepertest.Ether(1), math.ZeroInt(), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrZeroAmount)
	_, err = suite.keeper.EthToTokenSwapOutput(suite.ctx, suite.addr1, keepertest.Ether(1), tokenReserve, suite.deadline)
	suite.Require().ErrorIs(err, types.ErrInsufficientLiquidity)

	// only the priced amount is taken out of a generous max
	sold, err := suite.keeper.EthToTokenSwapOutput(suite.ctx, suite.addr1, keepertest.Ether(2), tokensBought, suite.deadline)
	suite.Require().NoError(err)
	suite.Require().Equal(cost.String(), sold.String())
	suite.Require().Equal(initialEth.Sub(cost).String(), suite.f.EthBalance(suite.addr1).String())
	suite.Require().Equal(tokensBought.String(), suite.f.TokenBalance(suite.addr1).String())
	suite.Require().Equal(ethReserve.Add(cost).String(), suite.keeper.EthReserve(suite.ctx).String())
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestTokenToEthSwapInput() {
	tokensSold := keepertest.Ether(1)
	suite.f.Fund(suite.T(), suite.addr1, math.ZeroInt(), keepertest.Ether(5))

	quote, err := suite.keeper.GetTokenToEthInputPrice(suite.ctx, tokensSold)
	suite.Require().NoError(err)

	_, err = suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, tokensSold, math.ZeroInt(), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrZeroMinEth)
	_, err = suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, tokensSold, quote.AddRaw(1), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrEthBoughtLessThanMin)
	_, err = suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, tokensSold, math.OneInt(), 1)
	suite.Require().ErrorIs(err, types.ErrDeadlinePassed)

	bought, err := suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, tokensSold, quote, suite.deadline)
	suite.Require().NoError(err)
	suite.Require().Equal(quote.String(), bought.String())
	suite.Require().Equal(quote.String(), suite.f.EthBalance(suite.addr1).String())
	suite.Require().Equal(keepertest.Ether(4).String(), suite.f.TokenBalance(suite.addr1).String())
	suite.Require().Equal(tokenReserve.Add(tokensSold).String(), suite.keeper.TokenReserve(suite.ctx).String())
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestTokenToEthSwapOutput() {
	ethBought := keepertest.Ether(1)
	suite.f.Fund(suite.T(), suite.addr1, math.ZeroInt(), keepertest.Ether(5))

	cost, err := suite.keeper.GetTokenToEthOutputPrice(suite.ctx, ethBought)
	suite.Require().NoError(err)
	suite.Require().Equal("2507522567703109328", cost.String())

	_, err = suite.keeper.TokenToEthSwapOutput(suite.ctx, suite.addr1, ethBought, math.ZeroInt(), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrZeroTokens)
	_, err = suite.keeper.TokenToEthSwapOutput(suite.ctx, suite.addr1, ethBought, cost.SubRaw(1), suite.deadline)
	suite.Require().ErrorIs(err, types.ErrSoldMoreThanMax)

	sold, err := suite.keeper.TokenToEthSwapOutput(suite.ctx, suite.addr1, ethBought, keepertest.Ether(5), suite.deadline)
	suite.Require().NoError(err)
	suite.Require().Equal(cost.String(), sold.String())
	suite.Require().Equal(ethBought.String(), suite.f.EthBalance(suite.addr1).String())
	suite.Require().Equal(keepertest.Ether(5).Sub(cost).String(), suite.f.TokenBalance(suite.addr1).String())
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestSwapWithoutAllowanceIsAtomic() {
	suite.Require().NoError(suite.f.Token.Mint(suite.ctx, suite.f.Params.TokenDenom, suite.addr1, keepertest.Ether(5)))
	before := suite.keeper.GetPool(suite.ctx)

	_, err := suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, keepertest.Ether(1), math.OneInt(), suite.deadline)
	suite.Require().Error(err)
	suite.Require().Equal(before, suite.keeper.GetPool(suite.ctx))
	suite.Require().Equal(keepertest.Ether(5).String(), suite.f.TokenBalance(suite.addr1).String())
	suite.Require().True(suite.f.EthBalance(suite.addr1).IsZero())
}

func (suite *KeeperTestSuite) TestSwapsNeverShrinkK() {
	suite.f.Fund(suite.T(), suite.addr1, keepertest.Ether(100), keepertest.Ether(100))
	k := suite.keeper.GetPool(suite.ctx).K()

	steps := []func() error{
		func() error {
			_, err := suite.keeper.EthToTokenSwapInput(suite.ctx, suite.addr1, keepertest.Ether(2), math.OneInt(), suite.deadline)
			return err
		},
		func() error {
			_, err := suite.keeper.TokenToEthSwapInput(suite.ctx, suite.addr1, keepertest.Ether(3), math.OneInt(), suite.deadline)
			return err
		},
		func() error {
			_, err := suite.keeper.EthToTokenSwapOutput(suite.ctx, suite.addr1, keepertest.Ether(50), math.NewInt(7), suite.deadline)
			return err
		},
		func() error {
			_, err := suite.keeper.TokenToEthSwapOutput(suite.ctx, suite.addr1, math.NewInt(1), keepertest.Ether(50), suite.deadline)
			return err
		},
	}
	for _, step := range steps {
		suite.Require().NoError(step())
		next := suite.keeper.GetPool(suite.ctx).K()
		suite.Require().True(next.Cmp(k) >= 0, "k shrank from %s to %s", k, next)
		k = new(big.Int).Set(next)
	}
	suite.requireInvariants()
}
