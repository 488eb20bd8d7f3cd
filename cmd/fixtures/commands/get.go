package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>...",
		Short: "Print the display string of named constants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				value, err := rt.table.Get(name)
				if err != nil {
					rt.log.WithError(err).WithField("name", name).Debug("unknown constant")
					return err
				}

				encoded, err := rt.encode(cmd.Context(), value)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), encoded)
			}
			return nil
		},
	}
}
