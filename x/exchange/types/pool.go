package types

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// Pool holds the reserves of both assets and the outstanding share supply.
// Per-holder share balances live in their own store entries.
type Pool struct {
	EthReserve   math.Int `json:"eth_reserve"`
	TokenReserve math.Int `json:"token_reserve"`
	TotalShares  math.Int `json:"total_shares"`
}

// EmptyPool returns the unseeded pool every deployment starts from.
func EmptyPool() Pool {
	return Pool{
		EthReserve:   math.ZeroInt(),
		TokenReserve: math.ZeroInt(),
		TotalShares:  math.ZeroInt(),
	}
}

// IsSeeded reports whether any shares are outstanding. An unseeded pool accepts
// a bootstrap deposit that fixes the initial price.
func (p Pool) IsSeeded() bool {
	return !p.TotalShares.IsNil() && p.TotalShares.IsPositive()
}

// K returns the constant-product value ethReserve * tokenReserve. The product
// can leave the 256-bit range of math.Int, so it is returned as a big.Int.
func (p Pool) K() *big.Int {
	return new(big.Int).Mul(p.EthReserve.BigInt(), p.TokenReserve.BigInt())
}

// Validate checks the pool is internally consistent.
func (p Pool) Validate() error {
	if p.EthReserve.IsNil() || p.TokenReserve.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool fields must be set")
	}
	if p.EthReserve.IsNegative() || p.TokenReserve.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative value in pool %s", p)
	}
	if p.TotalShares.IsZero() != (p.EthReserve.IsZero() && p.TokenReserve.IsZero()) {
		return ErrInvalidPoolState.Wrapf("shares and reserves disagree on emptiness: %s", p)
	}
	if p.IsSeeded() && (p.EthReserve.IsZero() || p.TokenReserve.IsZero()) {
		return ErrInvalidPoolState.Wrapf("seeded pool with a zero reserve: %s", p)
	}
	return nil
}

func (p Pool) String() string {
	return fmt.Sprintf("eth_reserve=%s token_reserve=%s total_shares=%s", p.EthReserve, p.TokenReserve, p.TotalShares)
}
