package keeper_test

import (
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"

	keepertest "github.com/nikswap/nikswap/testutil/keeper"
	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

func (suite *KeeperTestSuite) TestQueryServer() {
	qs := keeper.NewQueryServerImpl(suite.keeper)

	params, err := qs.Params(suite.ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultParams(), params.Params)

	pool, err := qs.Pool(suite.ctx, &types.QueryPoolRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(ethReserve.String(), pool.Pool.EthReserve.String())

	shares, err := qs.ShareBalance(suite.ctx, &types.QueryShareBalanceRequest{Address: suite.owner.String()})
	suite.Require().NoError(err)
	suite.Require().Equal(ethReserve.String(), shares.Shares.String())
	suite.Require().Equal(ethReserve.String(), shares.TotalShares.String())

	_, err = qs.ShareBalance(suite.ctx, &types.QueryShareBalanceRequest{Address: "bogus"})
	suite.Require().ErrorIs(err, types.ErrInvalidAddress)

	price, err := qs.Price(suite.ctx, &types.QueryPriceRequest{Kind: types.PriceEthToTokenInput, Amount: keepertest.Ether(1)})
	suite.Require().NoError(err)
	suite.Require().Equal("1662497915624478906", price.Price.String())

	_, err = qs.Price(suite.ctx, &types.QueryPriceRequest{Kind: "sideways", Amount: math.OneInt()})
	suite.Require().Error(err)

	_, err = qs.Pool(suite.ctx, nil)
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestQueryShareHoldersPaginates() {
	suite.Require().NoError(suite.keeper.TransferShares(suite.ctx, suite.owner, suite.addr1, math.NewInt(10)))
	suite.Require().NoError(suite.keeper.TransferShares(suite.ctx, suite.owner, suite.addr2, math.NewInt(20)))
	suite.Require().NoError(suite.keeper.ApproveShares(suite.ctx, suite.owner, suite.addr1, math.NewInt(3)))

	qs := keeper.NewQueryServerImpl(suite.keeper)
	page, err := qs.ShareHolders(suite.ctx, &types.QueryShareHoldersRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}})
	suite.Require().NoError(err)
	suite.Require().Len(page.Holders, 2)
	suite.Require().Equal(uint64(3), page.Pagination.Total)
	suite.Require().NotEmpty(page.Pagination.NextKey)

	rest, err := qs.ShareHolders(suite.ctx, &types.QueryShareHoldersRequest{Pagination: &query.PageRequest{Key: page.Pagination.NextKey}})
	suite.Require().NoError(err)
	suite.Require().Len(rest.Holders, 1)

	allowance, err := qs.ShareAllowance(suite.ctx, &types.QueryShareAllowanceRequest{Owner: suite.owner.String(), Spender: suite.addr1.String()})
	suite.Require().NoError(err)
	suite.Require().Equal("3", allowance.Amount.String())
}
