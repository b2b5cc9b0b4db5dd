package cmd

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
)

// nodeContext is what every command needs to reach the node's files.
type nodeContext struct {
	Home   string
	Config Config
	Logger log.Logger
}

type nodeContextKey struct{}

// NewRootCmd creates a new root command for nikswapd. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nikswapd",
		Short: "NikSwap exchange daemon",
		Long: `NikSwap runs a single constant-product exchange between the native asset and
one token. State lives in <home>/data; every tx command commits one block.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return setNodeContext(cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level (trace|debug|info|warn|error), overrides app.toml")

	rootCmd.AddCommand(
		InitCmd(),
		GenesisCmd(),
		KeysCmd(),
		TxCmd(),
		QueryCmd(),
		ServeCmd(),
		ExportCmd(),
	)
	return rootCmd
}

func setNodeContext(cmd *cobra.Command) error {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return err
	}

	v := newViper(home)
	for key, flag := range map[string]string{keyLogLevel: flagLogLevel, keyAPIAddress: flagAPIAddress} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := LoadConfig(v)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	nc := &nodeContext{
		Home:   home,
		Config: cfg,
		Logger: log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level)),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, nodeContextKey{}, nc))
	return nil
}

func getNodeContext(cmd *cobra.Command) (*nodeContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if nc, ok := ctx.Value(nodeContextKey{}).(*nodeContext); ok {
			return nc, nil
		}
	}
	return nil, errors.New("node context not set")
}

// validateCmd is the RunE of command groups: it only prints help.
func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return cmd.Help()
}
