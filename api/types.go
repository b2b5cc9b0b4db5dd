package api

import (
	"cosmossdk.io/math"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// PoolResponse describes the pool's reserves and share supply
type PoolResponse struct {
	NativeDenom  string   `json:"native_denom"`
	TokenDenom   string   `json:"token_denom"`
	EthReserve   math.Int `json:"eth_reserve"`
	TokenReserve math.Int `json:"token_reserve"`
	TotalShares  math.Int `json:"total_shares"`
	Seeded       bool     `json:"seeded"`
	// EthReserveEther is EthReserve in ether, for display
	EthReserveEther string `json:"eth_reserve_ether"`
}

// SharesResponse describes one holder's position
type SharesResponse struct {
	Address     string   `json:"address"`
	Shares      math.Int `json:"shares"`
	TotalShares math.Int `json:"total_shares"`
	// PoolFraction is Shares/TotalShares as a decimal string
	PoolFraction string `json:"pool_fraction"`
}

// BalancesResponse lists an account's balance of both pool assets
type BalancesResponse struct {
	Address string   `json:"address"`
	Native  math.Int `json:"native"`
	Token   math.Int `json:"token"`
}

// PriceResponse is a quote from one of the pricing functions
type PriceResponse struct {
	Kind   string   `json:"kind"`
	Amount math.Int `json:"amount"`
	Price  math.Int `json:"price"`
}

// HoldersResponse is one page of share holders
type HoldersResponse struct {
	Holders []SharesResponse `json:"holders"`
	NextKey string           `json:"next_key,omitempty"`
	Total   uint64           `json:"total,omitempty"`
}
