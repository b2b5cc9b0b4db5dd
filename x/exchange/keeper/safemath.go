package keeper

import (
	"cosmossdk.io/math"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// Pool arithmetic is done on 256-bit math.Int. These helpers turn the panics
// math.Int raises on overflow into ErrOverflow so an oversized trade is
// rejected like any other invalid call.

// SafeAdd adds two values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result, err := a.SafeAdd(b)
	if err != nil {
		return math.Int{}, types.ErrOverflow.Wrapf("%s + %s: %v", a, b, err)
	}
	return result, nil
}

// SafeSub subtracts b from a, rejecting a negative result
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrInvalidPoolState.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// SafeMulDiv computes floor(a * b / c) with overflow and division by zero checks.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrInvalidPoolState.Wrap("division by zero")
	}
	product, err := a.SafeMul(b)
	if err != nil {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s: %v", a, b, err)
	}
	return product.Quo(c), nil
}
