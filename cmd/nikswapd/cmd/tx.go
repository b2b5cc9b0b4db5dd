package cmd

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
	"github.com/nikswap/nikswap/x/exchange/keeper"
	"github.com/nikswap/nikswap/x/exchange/types"
)

const (
	flagFrom     = "from"
	flagDeadline = "deadline"
	flagDenom    = "denom"
)

// txContext carries what every tx handler needs inside its block.
type txContext struct {
	app       *app.App
	msgServer types.MsgServer
	from      sdk.AccAddress
	deadline  uint64
}

type txOutput struct {
	Height int64         `json:"height"`
	Result any           `json:"result"`
	Events []eventOutput `json:"events"`
}

// TxCmd returns the transaction commands. Each one commits a block at the
// current wall-clock time.
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transactions subcommands",
		RunE:  validateCmd,
	}
	cmd.PersistentFlags().String(flagFrom, "", "name or address of the sender")
	cmd.PersistentFlags().String(flagDeadline, "+5m", "unix seconds, or +duration from now")

	cmd.AddCommand(exchangeTxCmd(), tokenTxCmd())
	return cmd
}

// runTx opens the node, resolves --from and --deadline, and delivers fn as one
// block. A failing fn commits nothing.
func runTx(cmd *cobra.Command, fn func(ctx sdk.Context, tc txContext) (any, error)) error {
	nc, err := getNodeContext(cmd)
	if err != nil {
		return err
	}

	fromArg, _ := cmd.Flags().GetString(flagFrom)
	if fromArg == "" {
		return fmt.Errorf("--%s is required", flagFrom)
	}
	from, err := resolveAddress(fromArg)
	if err != nil {
		return err
	}

	now := time.Now()
	deadlineArg, _ := cmd.Flags().GetString(flagDeadline)
	deadline, err := parseDeadline(deadlineArg, now)
	if err != nil {
		return err
	}

	a, err := openApp(nc)
	if err != nil {
		return err
	}
	defer a.Close()

	tc := txContext{
		app:       a,
		msgServer: keeper.NewMsgServerImpl(a.ExchangeKeeper),
		from:      from,
		deadline:  deadline,
	}

	var result any
	events, err := a.Deliver(now, func(ctx sdk.Context) error {
		var err error
		result, err = fn(ctx, tc)
		return err
	})
	if err != nil {
		return err
	}

	return printJSON(cmd, txOutput{
		Height: a.LastBlockHeight(),
		Result: result,
		Events: formatEvents(events),
	})
}

// parseAmounts parses positional amount args in order, naming each in errors.
func parseAmounts(names []string, args []string) ([]math.Int, error) {
	out := make([]math.Int, len(names))
	for i, name := range names {
		amt, err := parseAmountArg(name, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = amt
	}
	return out, nil
}

// amountTxCmd builds a command whose positional args are all amounts.
func amountTxCmd(use, short string, names []string, fn func(ctx sdk.Context, tc txContext, amts []math.Int) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(len(names)),
		RunE: func(cmd *cobra.Command, args []string) error {
			amts, err := parseAmounts(names, args)
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx sdk.Context, tc txContext) (any, error) {
				return fn(ctx, tc, amts)
			})
		},
	}
}

func exchangeTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: "Exchange transaction subcommands",
		RunE:  validateCmd,
	}

	cmd.AddCommand(
		amountTxCmd("add-liquidity [eth] [min-shares] [max-tokens]", "Deposit native units and the proportional tokens",
			[]string{"eth", "min-shares", "max-tokens"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.AddLiquidity(ctx, &types.MsgAddLiquidity{
					Provider: tc.from.String(), Value: a[0], MinShares: a[1], MaxTokens: a[2], Deadline: tc.deadline,
				})
			}),
		amountTxCmd("remove-liquidity [shares] [min-eth] [min-tokens]", "Burn shares for the proportional reserves",
			[]string{"shares", "min-eth", "min-tokens"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.RemoveLiquidity(ctx, &types.MsgRemoveLiquidity{
					Provider: tc.from.String(), Amount: a[0], MinEth: a[1], MinTokens: a[2], Deadline: tc.deadline,
				})
			}),
		amountTxCmd("eth-to-token-input [eth-sold] [min-tokens]", "Sell an exact native amount for tokens",
			[]string{"eth-sold", "min-tokens"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.EthToTokenSwapInput(ctx, &types.MsgEthToTokenSwapInput{
					Buyer: tc.from.String(), Value: a[0], MinTokens: a[1], Deadline: tc.deadline,
				})
			}),
		amountTxCmd("eth-to-token-output [tokens-bought] [max-eth]", "Buy an exact token amount with native units",
			[]string{"tokens-bought", "max-eth"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.EthToTokenSwapOutput(ctx, &types.MsgEthToTokenSwapOutput{
					Buyer: tc.from.String(), TokensBought: a[0], Value: a[1], Deadline: tc.deadline,
				})
			}),
		amountTxCmd("token-to-eth-input [tokens-sold] [min-eth]", "Sell an exact token amount for native units",
			[]string{"tokens-sold", "min-eth"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.TokenToEthSwapInput(ctx, &types.MsgTokenToEthSwapInput{
					Seller: tc.from.String(), TokensSold: a[0], MinEth: a[1], Deadline: tc.deadline,
				})
			}),
		amountTxCmd("token-to-eth-output [eth-bought] [max-tokens]", "Buy an exact native amount with tokens",
			[]string{"eth-bought", "max-tokens"},
			func(ctx sdk.Context, tc txContext, a []math.Int) (any, error) {
				return tc.msgServer.TokenToEthSwapOutput(ctx, &types.MsgTokenToEthSwapOutput{
					Seller: tc.from.String(), EthBought: a[0], MaxTokens: a[1], Deadline: tc.deadline,
				})
			}),
		counterpartyTxCmd("transfer-shares [to] [amount]", "Move liquidity shares to another holder",
			func(_ *cobra.Command, ctx sdk.Context, tc txContext, to sdk.AccAddress, amt math.Int) (any, error) {
				return tc.msgServer.TransferShares(ctx, &types.MsgTransferShares{From: tc.from.String(), To: to.String(), Amount: amt})
			}),
		counterpartyTxCmd("approve-shares [spender] [amount]", "Allow a spender to move your shares",
			func(_ *cobra.Command, ctx sdk.Context, tc txContext, spender sdk.AccAddress, amt math.Int) (any, error) {
				return tc.msgServer.ApproveShares(ctx, &types.MsgApproveShares{Owner: tc.from.String(), Spender: spender.String(), Amount: amt})
			}),
	)
	return cmd
}

// counterpartyFn handles a tx taking a counterparty address and an amount.
type counterpartyFn func(cmd *cobra.Command, ctx sdk.Context, tc txContext, counterparty sdk.AccAddress, amt math.Int) (any, error)

func counterpartyTxCmd(use, short string, fn counterpartyFn) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			counterparty, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			amt, err := parseAmountArg("amount", args[1])
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx sdk.Context, tc txContext) (any, error) {
				return fn(cmd, ctx, tc, counterparty, amt)
			})
		},
	}
}

func tokenTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token transaction subcommands",
		RunE:  validateCmd,
	}
	cmd.PersistentFlags().String(flagDenom, "", "denom to move (default: the exchange's token)")

	cmd.AddCommand(
		counterpartyTxCmd("transfer [to] [amount]", "Transfer tokens",
			func(cmd *cobra.Command, ctx sdk.Context, tc txContext, to sdk.AccAddress, amt math.Int) (any, error) {
				denom := txDenom(cmd, ctx, tc)
				if err := tc.app.TokenKeeper.Transfer(ctx, denom, tc.from, to, amt); err != nil {
					return nil, err
				}
				return map[string]any{"denom": denom, "to": to.String(), "amount": amt}, nil
			}),
		counterpartyTxCmd("approve [spender] [amount]", `Set a spender's allowance ("pool" is the exchange)`,
			func(cmd *cobra.Command, ctx sdk.Context, tc txContext, spender sdk.AccAddress, amt math.Int) (any, error) {
				denom := txDenom(cmd, ctx, tc)
				if err := tc.app.TokenKeeper.Approve(ctx, denom, tc.from, spender, amt); err != nil {
					return nil, err
				}
				return map[string]any{"denom": denom, "spender": spender.String(), "amount": amt}, nil
			}),
	)
	return cmd
}

// txDenom is --denom, or the exchange's token when unset.
func txDenom(cmd *cobra.Command, ctx sdk.Context, tc txContext) string {
	if denom, _ := cmd.Flags().GetString(flagDenom); denom != "" {
		return denom
	}
	return tc.app.ExchangeKeeper.GetParams(ctx).TokenDenom
}
