package types

import (
	"cosmossdk.io/errors"
)

// Exchange module sentinel errors
var (
	// validation
	ErrDeadlinePassed   = errors.Register(ModuleName, 2, "deadline passed")
	ErrZeroEth          = errors.Register(ModuleName, 3, "must send eth")
	ErrZeroMinTokens    = errors.Register(ModuleName, 4, "must specify min tokens")
	ErrZeroMinLiquidity = errors.Register(ModuleName, 5, "min liquidity can't be 0")
	ErrZeroAmount       = errors.Register(ModuleName, 6, "amount can't be 0")
	ErrZeroTokens       = errors.Register(ModuleName, 7, "token amount can't be 0")
	ErrInvalidAddress   = errors.Register(ModuleName, 8, "invalid address")
	ErrInvalidAmount    = errors.Register(ModuleName, 9, "invalid amount")
	ErrInvalidParams    = errors.Register(ModuleName, 10, "invalid params")
	ErrZeroMinEth       = errors.Register(ModuleName, 11, "must specify min eth")

	// slippage
	ErrMaxTokensExceeded    = errors.Register(ModuleName, 20, "token amount can't exceed max tokens")
	ErrMinLiquidityNotMet   = errors.Register(ModuleName, 21, "liquidity minted less than min liquidity")
	ErrBoughtLessThanMin    = errors.Register(ModuleName, 22, "bought less than min tokens")
	ErrSoldMoreThanMax      = errors.Register(ModuleName, 23, "sold more than max amount")
	ErrMinEthNotMet         = errors.Register(ModuleName, 24, "eth amount less than min eth")
	ErrMinTokensNotMet      = errors.Register(ModuleName, 25, "token amount less than min tokens")
	ErrEthBoughtLessThanMin = errors.Register(ModuleName, 26, "bought less than min eth")

	// balances
	ErrBurnExceedsBalance     = errors.Register(ModuleName, 40, "burn amount exceeds balance")
	ErrTransferExceedsBalance = errors.Register(ModuleName, 41, "transfer amount exceeds balance")
	ErrInsufficientAllowance  = errors.Register(ModuleName, 42, "insufficient allowance")

	// pool state
	ErrInsufficientLiquidity = errors.Register(ModuleName, 60, "insufficient liquidity in pool")
	ErrReentrancy            = errors.Register(ModuleName, 61, "reentrant call")
	ErrOverflow              = errors.Register(ModuleName, 62, "arithmetic overflow")
	ErrInvalidPoolState      = errors.Register(ModuleName, 63, "invalid pool state")
)
