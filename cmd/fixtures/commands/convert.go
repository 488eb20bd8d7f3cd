package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

func newEncodeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex bytes>",
		Short: "Render 32 raw bytes, given as hex, as a display string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
				raw = raw[2:]
			}

			value, err := bytes32.Decode(raw, bytes32.EncodingHex)
			if err != nil {
				return err
			}

			encoded, err := rt.encode(cmd.Context(), value)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
}

func newDecodeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <display string>",
		Short: "Print the bytes of a display string as a byte array literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := rt.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatByteLiteral(value))
			return nil
		},
	}
}

func newWhoisCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whois <display string>",
		Short: "Print the name of the constant matching a display string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := rt.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			name, ok := rt.table.NameOf(value)
			if !ok {
				return errors.Wrapf(fixtures.ErrNotFound, "value %s", value.ToBase58())
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

// formatByteLiteral renders 12 bytes per line, matching how the constants are
// declared in source
func formatByteLiteral(value bytes32.Bytes32) string {
	var sb strings.Builder
	for i, b := range value {
		if i > 0 {
			if i%12 == 0 {
				sb.WriteString(",\n")
			} else {
				sb.WriteString(", ")
			}
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	return sb.String()
}
