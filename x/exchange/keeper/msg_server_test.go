package keeper_test

import (
	"cosmossdk.io/math"

	keepertest "github.com/nikswap/nikswap/testutil/keeper"
	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

func (suite *KeeperTestSuite) TestMsgServer() {
	ms := keeper.NewMsgServerImpl(suite.keeper)
	suite.f.Fund(suite.T(), suite.addr1, keepertest.Ether(100), keepertest.Ether(100))
	addr1 := suite.addr1.String()

	addResp, err := ms.AddLiquidity(suite.ctx, &types.MsgAddLiquidity{
		Provider:  addr1,
		Value:     keepertest.Ether(1),
		MinShares: math.OneInt(),
		MaxTokens: keepertest.Ether(3),
		Deadline:  suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(keepertest.Ether(1).String(), addResp.Shares.String())

	buyResp, err := ms.EthToTokenSwapInput(suite.ctx, &types.MsgEthToTokenSwapInput{
		Buyer:     addr1,
		Value:     keepertest.Ether(1),
		MinTokens: math.OneInt(),
		Deadline:  suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().True(buyResp.TokensBought.IsPositive())

	outResp, err := ms.EthToTokenSwapOutput(suite.ctx, &types.MsgEthToTokenSwapOutput{
		Buyer:        addr1,
		Value:        keepertest.Ether(1),
		TokensBought: math.NewInt(1000),
		Deadline:     suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().True(outResp.EthSold.IsPositive())

	sellResp, err := ms.TokenToEthSwapInput(suite.ctx, &types.MsgTokenToEthSwapInput{
		Seller:     addr1,
		TokensSold: keepertest.Ether(1),
		MinEth:     math.OneInt(),
		Deadline:   suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().True(sellResp.EthBought.IsPositive())

	sellOutResp, err := ms.TokenToEthSwapOutput(suite.ctx, &types.MsgTokenToEthSwapOutput{
		Seller:    addr1,
		EthBought: math.NewInt(1000),
		MaxTokens: keepertest.Ether(1),
		Deadline:  suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().True(sellOutResp.TokensSold.IsPositive())

	_, err = ms.ApproveShares(suite.ctx, &types.MsgApproveShares{Owner: addr1, Spender: suite.addr2.String(), Amount: math.NewInt(5)})
	suite.Require().NoError(err)
	_, err = ms.TransferShares(suite.ctx, &types.MsgTransferShares{From: addr1, To: suite.addr2.String(), Amount: math.NewInt(5)})
	suite.Require().NoError(err)
	suite.Require().Equal("5", suite.keeper.ShareBalance(suite.ctx, suite.addr2).String())

	removeResp, err := ms.RemoveLiquidity(suite.ctx, &types.MsgRemoveLiquidity{
		Provider:  addr1,
		Amount:    keepertest.Ether(1).SubRaw(5),
		MinEth:    math.OneInt(),
		MinTokens: math.OneInt(),
		Deadline:  suite.deadline,
	})
	suite.Require().NoError(err)
	suite.Require().True(removeResp.EthAmount.IsPositive())
	suite.Require().True(removeResp.TokenAmount.IsPositive())
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestMsgServerValidation() {
	ms := keeper.NewMsgServerImpl(suite.keeper)

	_, err := ms.AddLiquidity(suite.ctx, &types.MsgAddLiquidity{
		Provider:  "not-an-address",
		Value:     math.OneInt(),
		MinShares: math.OneInt(),
		MaxTokens: math.OneInt(),
		Deadline:  suite.deadline,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidAddress)

	_, err = ms.EthToTokenSwapInput(suite.ctx, &types.MsgEthToTokenSwapInput{
		Buyer:     suite.addr1.String(),
		Value:     math.NewInt(-1),
		MinTokens: math.OneInt(),
		Deadline:  suite.deadline,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = ms.RemoveLiquidity(suite.ctx, &types.MsgRemoveLiquidity{
		Provider:  suite.addr1.String(),
		Amount:    math.OneInt(),
		MinEth:    math.OneInt(),
		MinTokens: math.OneInt(),
		Deadline:  suite.deadline,
	})
	suite.Require().ErrorIs(err, types.ErrBurnExceedsBalance)
}
