package types

import (
	"cosmossdk.io/math"
)

// The trading fee is 0.3% of the input side of every swap.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
)

// GetInputPrice returns how much of the output asset a swap of inputAmount buys,
// after the fee, from a pool holding inputReserve and outputReserve.
//
//	output = floor(in*997*outputReserve / (inputReserve*1000 + in*997))
//
// Flooring keeps the product of the reserves from ever decreasing.
func GetInputPrice(inputAmount, inputReserve, outputReserve math.Int) (math.Int, error) {
	if inputAmount.IsNil() || !inputAmount.IsPositive() {
		return math.ZeroInt(), ErrZeroAmount.Wrap("input amount must be positive")
	}
	if !inputReserve.IsPositive() || !outputReserve.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("reserves %s/%s", inputReserve, outputReserve)
	}

	feeAdjustedInput, err := inputAmount.SafeMul(math.NewInt(FeeNumerator))
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("fee adjusted input: %v", err)
	}
	numerator, err := feeAdjustedInput.SafeMul(outputReserve)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("numerator: %v", err)
	}
	scaledReserve, err := inputReserve.SafeMul(math.NewInt(FeeDenominator))
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("scaled reserve: %v", err)
	}
	denominator, err := scaledReserve.SafeAdd(feeAdjustedInput)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("denominator: %v", err)
	}

	return numerator.Quo(denominator), nil
}

// GetOutputPrice returns the input needed to buy exactly outputAmount, fee
// included, rounded up by one unit in the pool's favour.
//
//	input = floor(inputReserve*out*1000 / ((outputReserve-out)*997)) + 1
func GetOutputPrice(outputAmount, inputReserve, outputReserve math.Int) (math.Int, error) {
	if outputAmount.IsNil() || !outputAmount.IsPositive() {
		return math.ZeroInt(), ErrZeroAmount.Wrap("output amount must be positive")
	}
	if !inputReserve.IsPositive() || !outputReserve.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("reserves %s/%s", inputReserve, outputReserve)
	}
	if outputAmount.GTE(outputReserve) {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("cannot buy %s of a %s reserve", outputAmount, outputReserve)
	}

	numerator, err := inputReserve.SafeMul(outputAmount)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("numerator: %v", err)
	}
	numerator, err = numerator.SafeMul(math.NewInt(FeeDenominator))
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("numerator: %v", err)
	}
	denominator, err := outputReserve.Sub(outputAmount).SafeMul(math.NewInt(FeeNumerator))
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("denominator: %v", err)
	}

	return numerator.Quo(denominator).AddRaw(1), nil
}
