package cmd

import (
	"github.com/spf13/cobra"
)

// KeysCmd groups development key commands. Keys are names mapped to
// deterministic addresses; there is no keyring and nothing is signed.
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Development key subcommands",
		RunE:  validateCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show the address a key name resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"name": args[0], "address": addr.String()})
		},
	})
	return cmd
}
