package cmd

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

// QueryCmd returns the read-only commands.
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying subcommands",
		RunE:    validateCmd,
	}
	cmd.AddCommand(exchangeQueryCmd(), tokenQueryCmd())
	return cmd
}

// runQuery runs fn against the latest committed state and prints its result.
func runQuery(cmd *cobra.Command, fn func(ctx sdk.Context, a *app.App, qs types.QueryServer) (any, error)) error {
	nc, err := getNodeContext(cmd)
	if err != nil {
		return err
	}
	a, err := openApp(nc)
	if err != nil {
		return err
	}
	defer a.Close()

	qs := keeper.NewQueryServerImpl(a.ExchangeKeeper)
	var result any
	err = a.Query(func(ctx sdk.Context) error {
		var err error
		result, err = fn(ctx, a, qs)
		return err
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func exchangeQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: "Exchange query subcommands",
		RunE:  validateCmd,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "params",
			Short: "Show the exchange's denominations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQuery(cmd, func(ctx sdk.Context, _ *app.App, qs types.QueryServer) (any, error) {
					return qs.Params(ctx, &types.QueryParamsRequest{})
				})
			},
		},
		&cobra.Command{
			Use:   "pool",
			Short: "Show reserves and share supply",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQuery(cmd, func(ctx sdk.Context, _ *app.App, qs types.QueryServer) (any, error) {
					return qs.Pool(ctx, &types.QueryPoolRequest{})
				})
			},
		},
		&cobra.Command{
			Use:   "shares [name_or_address]",
			Short: "Show a holder's liquidity shares",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				holder, err := resolveAddress(args[0])
				if err != nil {
					return err
				}
				return runQuery(cmd, func(ctx sdk.Context, _ *app.App, qs types.QueryServer) (any, error) {
					return qs.ShareBalance(ctx, &types.QueryShareBalanceRequest{Address: holder.String()})
				})
			},
		},
		&cobra.Command{
			Use:   "price [kind] [amount]",
			Short: fmt.Sprintf("Quote a price; kind is one of %v", types.PriceKinds),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				amount, err := parseAmountArg("amount", args[1])
				if err != nil {
					return err
				}
				return runQuery(cmd, func(ctx sdk.Context, _ *app.App, qs types.QueryServer) (any, error) {
					return qs.Price(ctx, &types.QueryPriceRequest{Kind: args[0], Amount: amount})
				})
			},
		},
	)
	return cmd
}

func tokenQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token query subcommands",
		RunE:  validateCmd,
	}

	balance := &cobra.Command{
		Use:   "balance [name_or_address]",
		Short: "Show an account's balance of both pool assets, or of --denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			denom, _ := cmd.Flags().GetString(flagDenom)
			return runQuery(cmd, func(ctx sdk.Context, a *app.App, _ types.QueryServer) (any, error) {
				denoms := []string{denom}
				if denom == "" {
					params := a.ExchangeKeeper.GetParams(ctx)
					denoms = []string{params.NativeDenom, params.TokenDenom}
				}
				balances := make(map[string]string, len(denoms))
				for _, d := range denoms {
					balances[d] = a.TokenKeeper.BalanceOf(ctx, d, addr).String()
				}
				return map[string]any{"address": addr.String(), "balances": balances}, nil
			})
		},
	}
	balance.Flags().String(flagDenom, "", "only this denom")

	cmd.AddCommand(balance)
	return cmd
}
