package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/nikswap/nikswap/x/exchange/types"
)

type validatable interface {
	ValidateBasic() error
}

func TestMsgValidateBasic(t *testing.T) {
	addr := sdk.AccAddress([]byte("trader______________")).String()
	other := sdk.AccAddress([]byte("other_______________")).String()
	one := math.OneInt()

	tests := []struct {
		name string
		msg  validatable
		err  error
	}{
		{"add liquidity", types.MsgAddLiquidity{Provider: addr, Value: one, MinShares: math.ZeroInt(), MaxTokens: one, Deadline: 1}, nil},
		{"add liquidity bad provider", types.MsgAddLiquidity{Provider: "x", Value: one, MinShares: one, MaxTokens: one}, types.ErrInvalidAddress},
		{"add liquidity unset max", types.MsgAddLiquidity{Provider: addr, Value: one, MinShares: one}, types.ErrInvalidAmount},
		{"remove liquidity", types.MsgRemoveLiquidity{Provider: addr, Amount: one, MinEth: one, MinTokens: one}, nil},
		{"remove liquidity negative", types.MsgRemoveLiquidity{Provider: addr, Amount: math.NewInt(-1), MinEth: one, MinTokens: one}, types.ErrInvalidAmount},
		{"eth to token input", types.MsgEthToTokenSwapInput{Buyer: addr, Value: one, MinTokens: one}, nil},
		{"eth to token output", types.MsgEthToTokenSwapOutput{Buyer: addr, Value: one, TokensBought: one}, nil},
		{"token to eth input", types.MsgTokenToEthSwapInput{Seller: addr, TokensSold: one, MinEth: one}, nil},
		{"token to eth output bad seller", types.MsgTokenToEthSwapOutput{Seller: "", EthBought: one, MaxTokens: one}, types.ErrInvalidAddress},
		{"transfer shares", types.MsgTransferShares{From: addr, To: other, Amount: one}, nil},
		{"transfer shares bad recipient", types.MsgTransferShares{From: addr, To: "y", Amount: one}, types.ErrInvalidAddress},
		{"approve shares", types.MsgApproveShares{Owner: addr, Spender: other, Amount: math.ZeroInt()}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}
