package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// Price kinds accepted by the Price query.
const (
	PriceEthToTokenInput  = "eth-to-token-input"
	PriceEthToTokenOutput = "eth-to-token-output"
	PriceTokenToEthInput  = "token-to-eth-input"
	PriceTokenToEthOutput = "token-to-eth-output"
)

// PriceKinds lists every supported price kind.
var PriceKinds = []string{PriceEthToTokenInput, PriceEthToTokenOutput, PriceTokenToEthInput, PriceTokenToEthOutput}

// QueryServer is the exchange module's read-only query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	ShareBalance(context.Context, *QueryShareBalanceRequest) (*QueryShareBalanceResponse, error)
	ShareAllowance(context.Context, *QueryShareAllowanceRequest) (*QueryShareAllowanceResponse, error)
	ShareHolders(context.Context, *QueryShareHoldersRequest) (*QueryShareHoldersResponse, error)
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct{}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryShareBalanceRequest struct {
	Address string `json:"address"`
}

type QueryShareBalanceResponse struct {
	Address     string   `json:"address"`
	Shares      math.Int `json:"shares"`
	TotalShares math.Int `json:"total_shares"`
}

type QueryShareAllowanceRequest struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

type QueryShareAllowanceResponse struct {
	Amount math.Int `json:"amount"`
}

type QueryShareHoldersRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryShareHoldersResponse struct {
	Holders    []ShareBalance      `json:"holders"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryPriceRequest struct {
	Kind   string   `json:"kind"`
	Amount math.Int `json:"amount"`
}

type QueryPriceResponse struct {
	Kind   string   `json:"kind"`
	Amount math.Int `json:"amount"`
	Price  math.Int `json:"price"`
}
