package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/api"
)

const flagAPIAddress = "api.address"

// ServeCmd serves the HTTP query API and /metrics until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP query API and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nc, err := getNodeContext(cmd)
			if err != nil {
				return err
			}
			a, err := openApp(nc)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.AssertInvariants(); err != nil {
				return fmt.Errorf("refusing to serve: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			apiCfg := nc.Config.API
			return api.NewServer(a, &apiCfg, nc.Logger).Start(ctx)
		},
	}
	cmd.Flags().String(flagAPIAddress, "", "listen address, overrides app.toml")
	return cmd
}
