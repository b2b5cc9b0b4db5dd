package types

import (
	"cosmossdk.io/errors"
)

// Token module sentinel errors
var (
	ErrInsufficientBalance   = errors.Register(ModuleName, 2, "transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 3, "insufficient allowance")
	ErrInvalidAmount         = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidDenom          = errors.Register(ModuleName, 5, "invalid denom")
	ErrInvalidAddress        = errors.Register(ModuleName, 6, "invalid address")
)
