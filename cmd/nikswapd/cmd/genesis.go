package cmd

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
	tokentypes "github.com/nikswap/nikswap/x/token/types"
)

// GenesisCmd groups commands that edit genesis.json before the first block.
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Genesis file subcommands",
		RunE:  validateCmd,
	}
	cmd.AddCommand(AddGenesisAccountCmd(), ValidateGenesisCmd())
	return cmd
}

// AddGenesisAccountCmd credits coins to an account in genesis.json.
func AddGenesisAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-account [name_or_address] [coin]...",
		Short: "Add a genesis balance to genesis.json",
		Long: `Add coins to an account's genesis balance. Coins are base units followed by
the denom, e.g. 100000000000000000000wei 5000unik. Repeated calls accumulate.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nc, err := getNodeContext(cmd)
			if err != nil {
				return err
			}

			addr, err := resolveAddress(args[0])
			if err != nil {
				return err
			}

			var coins sdk.Coins
			for _, arg := range args[1:] {
				coin, err := sdk.ParseCoinNormalized(arg)
				if err != nil {
					return fmt.Errorf("failed to parse coin %q: %w", arg, err)
				}
				coins = coins.Add(coin)
			}

			genFile := genesisFile(nc.Home)
			doc, err := app.LoadGenesisDoc(genFile)
			if err != nil {
				return err
			}

			balances := doc.AppState.Token.Balances
			found := false
			for i := range balances {
				if balances[i].Address == addr.String() {
					balances[i].Coins = balances[i].Coins.Add(coins...)
					found = true
					break
				}
			}
			if !found {
				balances = append(balances, tokentypes.Balance{Address: addr.String(), Coins: coins})
			}
			doc.AppState.Token.Balances = balances

			if err := doc.AppState.Validate(); err != nil {
				return err
			}
			if err := doc.Save(genFile); err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"address": addr.String(), "added": coins.String()})
		},
	}
}

// ValidateGenesisCmd checks a genesis file, genesis.json in the home by default.
func ValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a genesis file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nc, err := getNodeContext(cmd)
			if err != nil {
				return err
			}
			path := genesisFile(nc.Home)
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := app.LoadGenesisDoc(path); err != nil {
				return fmt.Errorf("invalid genesis file %s: %w", path, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "File at %s is a valid genesis file\n", path)
			return err
		},
	}
}
