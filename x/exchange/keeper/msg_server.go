package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nikswap/nikswap/x/exchange/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the exchange MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddLiquidity handles a liquidity deposit
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.Value, msg.MinShares, msg.MaxTokens, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}
	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity handles a liquidity withdrawal
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	ethOut, tokenOut, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.Amount, msg.MinEth, msg.MinTokens, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}
	return &types.MsgRemoveLiquidityResponse{EthAmount: ethOut, TokenAmount: tokenOut}, nil
}

// EthToTokenSwapInput handles an exact-input native-to-token swap
func (ms msgServer) EthToTokenSwapInput(goCtx context.Context, msg *types.MsgEthToTokenSwapInput) (*types.MsgEthToTokenSwapInputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("EthToTokenSwapInput: validate: %w", err)
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("EthToTokenSwapInput: invalid buyer address: %w", err)
	}

	bought, err := ms.Keeper.EthToTokenSwapInput(goCtx, buyer, msg.Value, msg.MinTokens, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("EthToTokenSwapInput: %w", err)
	}
	return &types.MsgEthToTokenSwapInputResponse{TokensBought: bought}, nil
}

// EthToTokenSwapOutput handles an exact-output native-to-token swap
func (ms msgServer) EthToTokenSwapOutput(goCtx context.Context, msg *types.MsgEthToTokenSwapOutput) (*types.MsgEthToTokenSwapOutputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("EthToTokenSwapOutput: validate: %w", err)
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("EthToTokenSwapOutput: invalid buyer address: %w", err)
	}

	sold, err := ms.Keeper.EthToTokenSwapOutput(goCtx, buyer, msg.Value, msg.TokensBought, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("EthToTokenSwapOutput: %w", err)
	}
	return &types.MsgEthToTokenSwapOutputResponse{EthSold: sold}, nil
}

// TokenToEthSwapInput handles an exact-input token-to-native swap
func (ms msgServer) TokenToEthSwapInput(goCtx context.Context, msg *types.MsgTokenToEthSwapInput) (*types.MsgTokenToEthSwapInputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TokenToEthSwapInput: validate: %w", err)
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, fmt.Errorf("TokenToEthSwapInput: invalid seller address: %w", err)
	}

	bought, err := ms.Keeper.TokenToEthSwapInput(goCtx, seller, msg.TokensSold, msg.MinEth, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("TokenToEthSwapInput: %w", err)
	}
	return &types.MsgTokenToEthSwapInputResponse{EthBought: bought}, nil
}

// TokenToEthSwapOutput handles an exact-output token-to-native swap
func (ms msgServer) TokenToEthSwapOutput(goCtx context.Context, msg *types.MsgTokenToEthSwapOutput) (*types.MsgTokenToEthSwapOutputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TokenToEthSwapOutput: validate: %w", err)
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, fmt.Errorf("TokenToEthSwapOutput: invalid seller address: %w", err)
	}

	sold, err := ms.Keeper.TokenToEthSwapOutput(goCtx, seller, msg.EthBought, msg.MaxTokens, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("TokenToEthSwapOutput: %w", err)
	}
	return &types.MsgTokenToEthSwapOutputResponse{TokensSold: sold}, nil
}

// TransferShares handles a share transfer
func (ms msgServer) TransferShares(goCtx context.Context, msg *types.MsgTransferShares) (*types.MsgTransferSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TransferShares: validate: %w", err)
	}
	from := sdk.MustAccAddressFromBech32(msg.From)
	to := sdk.MustAccAddressFromBech32(msg.To)

	if err := ms.Keeper.TransferShares(goCtx, from, to, msg.Amount); err != nil {
		return nil, fmt.Errorf("TransferShares: %w", err)
	}
	return &types.MsgTransferSharesResponse{}, nil
}

// ApproveShares handles a share allowance update
func (ms msgServer) ApproveShares(goCtx context.Context, msg *types.MsgApproveShares) (*types.MsgApproveSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApproveShares: validate: %w", err)
	}
	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	spender := sdk.MustAccAddressFromBech32(msg.Spender)

	if err := ms.Keeper.ApproveShares(goCtx, owner, spender, msg.Amount); err != nil {
		return nil, fmt.Errorf("ApproveShares: %w", err)
	}
	return &types.MsgApproveSharesResponse{}, nil
}
