package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity deposits Value native units plus the proportional token amount.
type MsgAddLiquidity struct {
	Provider  string   `json:"provider"`
	Value     math.Int `json:"value"`
	MinShares math.Int `json:"min_shares"`
	MaxTokens math.Int `json:"max_tokens"`
	Deadline  uint64   `json:"deadline"`
}

// MsgRemoveLiquidity burns Amount shares for the proportional reserves.
type MsgRemoveLiquidity struct {
	Provider  string   `json:"provider"`
	Amount    math.Int `json:"amount"`
	MinEth    math.Int `json:"min_eth"`
	MinTokens math.Int `json:"min_tokens"`
	Deadline  uint64   `json:"deadline"`
}

// MsgEthToTokenSwapInput sells exactly Value native units for at least MinTokens.
type MsgEthToTokenSwapInput struct {
	Buyer     string   `json:"buyer"`
	Value     math.Int `json:"value"`
	MinTokens math.Int `json:"min_tokens"`
	Deadline  uint64   `json:"deadline"`
}

// MsgEthToTokenSwapOutput buys exactly TokensBought spending at most Value native units.
type MsgEthToTokenSwapOutput struct {
	Buyer        string   `json:"buyer"`
	Value        math.Int `json:"value"`
	TokensBought math.Int `json:"tokens_bought"`
	Deadline     uint64   `json:"deadline"`
}

// MsgTokenToEthSwapInput sells exactly TokensSold for at least MinEth.
type MsgTokenToEthSwapInput struct {
	Seller     string   `json:"seller"`
	TokensSold math.Int `json:"tokens_sold"`
	MinEth     math.Int `json:"min_eth"`
	Deadline   uint64   `json:"deadline"`
}

// MsgTokenToEthSwapOutput buys exactly EthBought selling at most MaxTokens.
type MsgTokenToEthSwapOutput struct {
	Seller    string   `json:"seller"`
	EthBought math.Int `json:"eth_bought"`
	MaxTokens math.Int `json:"max_tokens"`
	Deadline  uint64   `json:"deadline"`
}

// MsgTransferShares moves liquidity shares between holders.
type MsgTransferShares struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Amount math.Int `json:"amount"`
}

// MsgApproveShares sets the shares Spender may move on Owner's behalf.
type MsgApproveShares struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks. Zero amounts are left to the keeper,
// whose answer depends on pool state.
func (msg MsgAddLiquidity) ValidateBasic() error {
	if err := validateAddress("provider", msg.Provider); err != nil {
		return err
	}
	return validateAmounts(named{"value", msg.Value}, named{"min_shares", msg.MinShares}, named{"max_tokens", msg.MaxTokens})
}

// ValidateBasic performs stateless checks.
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if err := validateAddress("provider", msg.Provider); err != nil {
		return err
	}
	return validateAmounts(named{"amount", msg.Amount}, named{"min_eth", msg.MinEth}, named{"min_tokens", msg.MinTokens})
}

// ValidateBasic performs stateless checks.
func (msg MsgEthToTokenSwapInput) ValidateBasic() error {
	if err := validateAddress("buyer", msg.Buyer); err != nil {
		return err
	}
	return validateAmounts(named{"value", msg.Value}, named{"min_tokens", msg.MinTokens})
}

// ValidateBasic performs stateless checks.
func (msg MsgEthToTokenSwapOutput) ValidateBasic() error {
	if err := validateAddress("buyer", msg.Buyer); err != nil {
		return err
	}
	return validateAmounts(named{"value", msg.Value}, named{"tokens_bought", msg.TokensBought})
}

// ValidateBasic performs stateless checks.
func (msg MsgTokenToEthSwapInput) ValidateBasic() error {
	if err := validateAddress("seller", msg.Seller); err != nil {
		return err
	}
	return validateAmounts(named{"tokens_sold", msg.TokensSold}, named{"min_eth", msg.MinEth})
}

// ValidateBasic performs stateless checks.
func (msg MsgTokenToEthSwapOutput) ValidateBasic() error {
	if err := validateAddress("seller", msg.Seller); err != nil {
		return err
	}
	return validateAmounts(named{"eth_bought", msg.EthBought}, named{"max_tokens", msg.MaxTokens})
}

// ValidateBasic performs stateless checks.
func (msg MsgTransferShares) ValidateBasic() error {
	if err := validateAddress("from", msg.From); err != nil {
		return err
	}
	if err := validateAddress("to", msg.To); err != nil {
		return err
	}
	return validateAmounts(named{"amount", msg.Amount})
}

// ValidateBasic performs stateless checks.
func (msg MsgApproveShares) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	if err := validateAddress("spender", msg.Spender); err != nil {
		return err
	}
	return validateAmounts(named{"amount", msg.Amount})
}

type named struct {
	name  string
	value math.Int
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid %s address: %s", field, err)
	}
	return nil
}

func validateAmounts(amounts ...named) error {
	for _, a := range amounts {
		if a.value.IsNil() {
			return ErrInvalidAmount.Wrapf("%s must be set", a.name)
		}
		if a.value.IsNegative() {
			return ErrInvalidAmount.Wrapf("%s must not be negative", a.name)
		}
	}
	return nil
}
