package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/nikswap/nikswap/pkg/units"
	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

// queryServer runs fn against the exchange query service at the latest height.
func (s *Server) queryServer(fn func(ctx sdk.Context, qs types.QueryServer) error) error {
	qs := keeper.NewQueryServerImpl(s.app.ExchangeKeeper)
	return s.app.Query(func(ctx sdk.Context) error {
		return fn(ctx, qs)
	})
}

// handleGetParams returns the exchange's denominations
func (s *Server) handleGetParams(c *gin.Context) {
	var res *types.QueryParamsResponse
	err := s.queryServer(func(ctx sdk.Context, qs types.QueryServer) (err error) {
		res, err = qs.Params(ctx, &types.QueryParamsRequest{})
		return err
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.Params)
}

// handleGetPool returns reserves and share supply
func (s *Server) handleGetPool(c *gin.Context) {
	var (
		pool   types.Pool
		params types.Params
	)
	err := s.queryServer(func(ctx sdk.Context, qs types.QueryServer) error {
		poolRes, err := qs.Pool(ctx, &types.QueryPoolRequest{})
		if err != nil {
			return err
		}
		paramsRes, err := qs.Params(ctx, &types.QueryParamsRequest{})
		if err != nil {
			return err
		}
		pool, params = poolRes.Pool, paramsRes.Params
		return nil
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PoolResponse{
		NativeDenom:     params.NativeDenom,
		TokenDenom:      params.TokenDenom,
		EthReserve:      pool.EthReserve,
		TokenReserve:    pool.TokenReserve,
		TotalShares:     pool.TotalShares,
		Seeded:          pool.IsSeeded(),
		EthReserveEther: units.FormatEther(pool.EthReserve),
	})
}

// handleGetShares returns one holder's share balance
func (s *Server) handleGetShares(c *gin.Context) {
	var res *types.QueryShareBalanceResponse
	err := s.queryServer(func(ctx sdk.Context, qs types.QueryServer) (err error) {
		res, err = qs.ShareBalance(ctx, &types.QueryShareBalanceRequest{Address: c.Param("address")})
		return err
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSharesResponse(res.Address, res.Shares, res.TotalShares))
}

// handleGetShareAllowance returns an owner's share allowance for a spender
func (s *Server) handleGetShareAllowance(c *gin.Context) {
	var res *types.QueryShareAllowanceResponse
	err := s.queryServer(func(ctx sdk.Context, qs types.QueryServer) (err error) {
		res, err = qs.ShareAllowance(ctx, &types.QueryShareAllowanceRequest{
			Owner:   c.Param("address"),
			Spender: c.Param("spender"),
		})
		return err
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"owner":   c.Param("address"),
		"spender": c.Param("spender"),
		"amount":  res.Amount,
	})
}

// handleGetShareHolders pages through every non-zero share balance.
// Query params: limit, key (base64 next_key from the previous page).
func (s *Server) handleGetShareHolders(c *gin.Context) {
	pageReq := &query.PageRequest{CountTotal: true}
	if raw := c.Query("limit"); raw != "" {
		limit, err := cast.ToUint64E(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit", Code: "INVALID_REQUEST", Details: err.Error()})
			return
		}
		pageReq.Limit = limit
	}
	if raw := c.Query("key"); raw != "" {
		key, err := base64.URLEncoding.DecodeString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page key", Code: "INVALID_REQUEST", Details: err.Error()})
			return
		}
		pageReq.Key = key
		pageReq.CountTotal = false
	}

	var res *types.QueryShareHoldersResponse
	var total math.Int
	err := s.queryServer(func(ctx sdk.Context, qs types.QueryServer) (err error) {
		total = s.app.ExchangeKeeper.TotalShares(ctx)
		res, err = qs.ShareHolders(ctx, &types.QueryShareHoldersRequest{Pagination: pageReq})
		return err
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	out := HoldersResponse{Holders: make([]SharesResponse, 0, len(res.Holders))}
	for _, h := range res.Holders {
		out.Holders = append(out.Holders, newSharesResponse(h.Address, h.Shares, total))
	}
	if res.Pagination != nil {
		if len(res.Pagination.NextKey) > 0 {
			out.NextKey = base64.URLEncoding.EncodeToString(res.Pagination.NextKey)
		}
		out.Total = res.Pagination.Total
	}
	c.JSON(http.StatusOK, out)
}

// handleGetBalances returns native and token balances for an address
func (s *Server) handleGetBalances(c *gin.Context) {
	addr, err := sdk.AccAddressFromBech32(c.Param("address"))
	if err != nil {
		s.writeError(c, types.ErrInvalidAddress.Wrap(err.Error()))
		return
	}

	var res BalancesResponse
	err = s.app.Query(func(ctx sdk.Context) error {
		params := s.app.ExchangeKeeper.GetParams(ctx)
		res = BalancesResponse{
			Address: addr.String(),
			Native:  s.app.TokenKeeper.BalanceOf(ctx, params.NativeDenom, addr),
			Token:   s.app.TokenKeeper.BalanceOf(ctx, params.TokenDenom, addr),
		}
		return nil
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// handleGetPrice quotes a price. The amount query param accepts unit
// suffixes, e.g. ?amount=1.5ether.
func (s *Server) handleGetPrice(c *gin.Context) {
	amount, err := units.ParseAmount(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount", Code: "INVALID_AMOUNT", Details: err.Error()})
		return
	}

	var res *types.QueryPriceResponse
	err = s.queryServer(func(ctx sdk.Context, qs types.QueryServer) (err error) {
		res, err = qs.Price(ctx, &types.QueryPriceRequest{Kind: c.Param("kind"), Amount: amount})
		return err
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, PriceResponse{Kind: res.Kind, Amount: res.Amount, Price: res.Price})
}

func newSharesResponse(addr string, shares, total math.Int) SharesResponse {
	fraction := decimal.Zero
	if total.IsPositive() {
		fraction = decimal.NewFromBigInt(shares.BigInt(), 0).DivRound(decimal.NewFromBigInt(total.BigInt(), 0), 18)
	}
	return SharesResponse{
		Address:      addr,
		Shares:       shares,
		TotalShares:  total,
		PoolFraction: fraction.String(),
	}
}

// writeError maps module errors onto HTTP status codes.
func (s *Server) writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, types.ErrInvalidAddress):
		status, code = http.StatusBadRequest, "INVALID_ADDRESS"
	case errors.Is(err, sdkerrors.ErrInvalidRequest),
		errors.Is(err, types.ErrZeroAmount),
		errors.Is(err, types.ErrInvalidAmount):
		status, code = http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, types.ErrInsufficientLiquidity),
		errors.Is(err, types.ErrOverflow):
		status, code = http.StatusUnprocessableEntity, "INSUFFICIENT_LIQUIDITY"
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("query failed", "path", c.Request.URL.Path, "error", err)
	}

	resp := ErrorResponse{Error: err.Error(), Code: code}
	if codespace, abciCode, _ := errorsmod.ABCIInfo(err, false); codespace != errorsmod.UndefinedCodespace {
		resp.Details = codespace + ":" + strconv.FormatUint(uint64(abciCode), 10)
	}
	c.JSON(status, resp)
}
