package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all named constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Labels are base58, so they're only worth printing alongside other encodings
			withLabels := rt.showLabels.Get(ctx) && rt.encoding.Get(ctx) != bytes32.EncodingBase58

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range rt.table.Entries() {
				encoded, err := rt.encode(ctx, entry.Value)
				if err != nil {
					return err
				}

				if withLabels && len(entry.Label) > 0 {
					fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, encoded, entry.Label)
				} else {
					fmt.Fprintf(w, "%s\t%s\n", entry.Name, encoded)
				}
			}
			return w.Flush()
		},
	}
}
