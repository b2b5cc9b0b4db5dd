package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the exchange module's transaction service.
type MsgServer interface {
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	EthToTokenSwapInput(context.Context, *MsgEthToTokenSwapInput) (*MsgEthToTokenSwapInputResponse, error)
	EthToTokenSwapOutput(context.Context, *MsgEthToTokenSwapOutput) (*MsgEthToTokenSwapOutputResponse, error)
	TokenToEthSwapInput(context.Context, *MsgTokenToEthSwapInput) (*MsgTokenToEthSwapInputResponse, error)
	TokenToEthSwapOutput(context.Context, *MsgTokenToEthSwapOutput) (*MsgTokenToEthSwapOutputResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	ApproveShares(context.Context, *MsgApproveShares) (*MsgApproveSharesResponse, error)
}

type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

type MsgRemoveLiquidityResponse struct {
	EthAmount   math.Int `json:"eth_amount"`
	TokenAmount math.Int `json:"token_amount"`
}

type MsgEthToTokenSwapInputResponse struct {
	TokensBought math.Int `json:"tokens_bought"`
}

type MsgEthToTokenSwapOutputResponse struct {
	EthSold math.Int `json:"eth_sold"`
}

type MsgTokenToEthSwapInputResponse struct {
	EthBought math.Int `json:"eth_bought"`
}

type MsgTokenToEthSwapOutputResponse struct {
	TokensSold math.Int `json:"tokens_sold"`
}

type MsgTransferSharesResponse struct{}

type MsgApproveSharesResponse struct{}
