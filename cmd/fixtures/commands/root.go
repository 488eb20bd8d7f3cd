package commands

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/code-fixtures/pkg/config"
	"github.com/code-payments/code-fixtures/pkg/config/env"
	"github.com/code-payments/code-fixtures/pkg/config/memory"
	"github.com/code-payments/code-fixtures/pkg/config/wrapper"
	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

const (
	showLabelsConfigEnvName = "SHOW_LABELS"
	defaultShowLabels       = true

	outputEncodingConfigEnvName = "OUTPUT_ENCODING"
)

// runtime is the state resolved before any sub command runs
type runtime struct {
	log *logrus.Entry

	table      *fixtures.Table
	encoding   config.Encoding
	showLabels config.Bool
}

func (r *runtime) encode(ctx context.Context, value bytes32.Bytes32) (string, error) {
	return bytes32.Encode(value, r.encoding.Get(ctx))
}

func (r *runtime) decode(ctx context.Context, value string) (bytes32.Bytes32, error) {
	return bytes32.Decode(value, r.encoding.Get(ctx))
}

// NewRootCmd returns the fixtures command with all sub commands installed
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		encoding   string
	)

	v := newViper()
	rt := &runtime{
		log:   logrus.StandardLogger().WithField("type", "cmd/fixtures"),
		table: fixtures.Default(),
	}

	cmd := &cobra.Command{
		Use:           "fixtures",
		Short:         "Look up and convert well-known Solana 32 byte constants",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}

			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}

			configureLogger(cfg)

			// Precedence: --encoding flag, OUTPUT_ENCODING, config file, base58
			configured := bytes32.EncodingBase58
			if len(cfg.OutputEncoding) > 0 {
				configured, err = bytes32.ParseEncoding(cfg.OutputEncoding)
				if err != nil {
					return errors.Wrap(err, "invalid output_encoding in config")
				}
			}

			fallback, err := env.NewEncodingConfig(outputEncodingConfigEnvName, configured).GetSafe(cmd.Context())
			if err != nil {
				return errors.Wrapf(err, "invalid %s", outputEncodingConfigEnvName)
			}

			source := memory.NewConfig(nil)
			if cmd.Flags().Changed("encoding") {
				source.SetValue(encoding)
			}
			rt.encoding = wrapper.NewEncodingConfig(source, fallback)
			if _, err := rt.encoding.GetSafe(cmd.Context()); err != nil {
				return err
			}

			rt.showLabels = env.NewBoolConfig(showLabelsConfigEnvName, defaultShowLabels)

			rt.table, err = buildTable(cfg)
			if err != nil {
				return err
			}

			rt.log.WithFields(logrus.Fields{
				"constants": rt.table.Len(),
				"encoding":  rt.encoding.Get(cmd.Context()).String(),
			}).Debug("fixture table loaded")

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file path")
	cmd.PersistentFlags().StringVar(&encoding, "encoding", bytes32.EncodingBase58.String(), "display encoding (base58, hex)")
	cmd.PersistentFlags().String("log-level", defaultConfig.LogLevel, "log level")

	cmd.AddCommand(
		newListCmd(rt),
		newGetCmd(rt),
		newEncodeCmd(rt),
		newDecodeCmd(rt),
		newWhoisCmd(rt),
	)

	return cmd
}
