package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
)

const (
	flagOverwrite   = "overwrite"
	flagChainID     = "chain-id"
	flagNativeDenom = "native-denom"
	flagTokenDenom  = "token-denom"
)

// InitCmd returns a command that writes app.toml and genesis.json.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node's configuration and genesis files",
		Long: `Initialize the node's configuration and genesis files.

Example:
  nikswapd init --chain-id nikswap-testnet-1 --home ~/.nikswap
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nc, err := getNodeContext(cmd)
			if err != nil {
				return err
			}

			genFile := genesisFile(nc.Home)
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)

			// Check if genesis file already exists
			if !overwrite && fileExists(genFile) {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			cfgFile := configFile(nc.Home)
			if overwrite || !fileExists(cfgFile) {
				if err := WriteConfigFile(cfgFile, nc.Config); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
			}

			chainID, _ := cmd.Flags().GetString(flagChainID)
			doc := app.NewGenesisDoc(chainID, time.Now())
			if denom, _ := cmd.Flags().GetString(flagNativeDenom); denom != "" {
				doc.AppState.Exchange.Params.NativeDenom = denom
			}
			if denom, _ := cmd.Flags().GetString(flagTokenDenom); denom != "" {
				doc.AppState.Exchange.Params.TokenDenom = denom
			}
			if err := doc.AppState.Validate(); err != nil {
				return err
			}
			if err := doc.Save(genFile); err != nil {
				return fmt.Errorf("write genesis: %w", err)
			}

			return printJSON(cmd, map[string]string{
				"chain_id":     doc.ChainID,
				"home":         nc.Home,
				"config_file":  cfgFile,
				"genesis_file": genFile,
			})
		},
	}

	cmd.Flags().Bool(flagOverwrite, false, "overwrite the genesis.json file")
	cmd.Flags().String(flagChainID, app.DefaultChainID, "genesis file chain-id")
	cmd.Flags().String(flagNativeDenom, "", "denom of the native asset (default wei)")
	cmd.Flags().String(flagTokenDenom, "", "denom of the exchange's token (default unik)")
	return cmd
}
