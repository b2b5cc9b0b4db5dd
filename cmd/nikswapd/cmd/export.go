package cmd

import (
	"github.com/spf13/cobra"
)

const flagOutputDocument = "output-document"

// ExportCmd dumps the current state as a genesis document.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state to genesis JSON",
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

			doc, err := a.ExportGenesis()
			if err != nil {
				return err
			}
			if out, _ := cmd.Flags().GetString(flagOutputDocument); out != "" {
				return doc.Save(out)
			}
			return printJSON(cmd, doc)
		},
	}
	cmd.Flags().String(flagOutputDocument, "", "write the genesis to this file instead of stdout")
	return cmd
}
