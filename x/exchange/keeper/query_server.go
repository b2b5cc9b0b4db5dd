package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/nikswap/nikswap/x/exchange/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the exchange QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryParamsResponse{Params: qs.Keeper.GetParams(goCtx)}, nil
}

// Pool returns the reserves and share supply
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryPoolResponse{Pool: qs.Keeper.GetPool(goCtx)}, nil
}

// ShareBalance returns one holder's shares
func (qs queryServer) ShareBalance(goCtx context.Context, req *types.QueryShareBalanceRequest) (*types.QueryShareBalanceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	holder, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("ShareBalance: %v", err)
	}
	return &types.QueryShareBalanceResponse{
		Address:     holder.String(),
		Shares:      qs.Keeper.ShareBalance(goCtx, holder),
		TotalShares: qs.Keeper.TotalShares(goCtx),
	}, nil
}

// ShareAllowance returns an owner's share allowance for a spender
func (qs queryServer) ShareAllowance(goCtx context.Context, req *types.QueryShareAllowanceRequest) (*types.QueryShareAllowanceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("ShareAllowance: owner: %v", err)
	}
	spender, err := sdk.AccAddressFromBech32(req.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("ShareAllowance: spender: %v", err)
	}
	return &types.QueryShareAllowanceResponse{Amount: qs.Keeper.ShareAllowance(goCtx, owner, spender)}, nil
}

// ShareHolders lists share balances with pagination
func (qs queryServer) ShareHolders(goCtx context.Context, req *types.QueryShareHoldersRequest) (*types.QueryShareHoldersResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pageReq := req.Pagination
	if pageReq == nil {
		pageReq = &query.PageRequest{Limit: defaultPaginationLimit}
	} else if pageReq.Limit > maxPaginationLimit {
		pageReq.Limit = maxPaginationLimit
	}

	store := prefix.NewStore(qs.getStore(goCtx), types.ShareBalanceKeyPrefix)
	var holders []types.ShareBalance
	pageRes, err := query.Paginate(store, pageReq, func(key, value []byte) error {
		var shares math.Int
		if err := shares.Unmarshal(value); err != nil {
			return err
		}
		holders = append(holders, types.ShareBalance{
			Address: holderFromKey(key).String(),
			Shares:  shares,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ShareHolders: paginate: %w", err)
	}
	return &types.QueryShareHoldersResponse{Holders: holders, Pagination: pageRes}, nil
}

// Price quotes one of the four pricing functions against live reserves
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	if req.Amount.IsNil() {
		return nil, types.ErrZeroAmount
	}

	var (
		price math.Int
		err   error
	)
	switch req.Kind {
	case types.PriceEthToTokenInput:
		price, err = qs.Keeper.GetEthToTokenInputPrice(goCtx, req.Amount)
	case types.PriceEthToTokenOutput:
		price, err = qs.Keeper.GetEthToTokenOutputPrice(goCtx, req.Amount)
	case types.PriceTokenToEthInput:
		price, err = qs.Keeper.GetTokenToEthInputPrice(goCtx, req.Amount)
	case types.PriceTokenToEthOutput:
		price, err = qs.Keeper.GetTokenToEthOutputPrice(goCtx, req.Amount)
	default:
		return nil, sdkerrors.ErrInvalidRequest.Wrapf("unknown price kind %q, want one of %v", req.Kind, types.PriceKinds)
	}
	if err != nil {
		return nil, err
	}
	return &types.QueryPriceResponse{Kind: req.Kind, Amount: req.Amount, Price: price}, nil
}
