package commands

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

// BaseConfig is the configuration shared by all commands
type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`

	// OutputEncoding is the display encoding used when neither the --encoding
	// flag nor OUTPUT_ENCODING is provided. Supported values are base58 and hex.
	OutputEncoding string `mapstructure:"output_encoding"`

	// Fixtures are extra named constants, as base58 strings, added to the
	// default table. Names are lower cased when read from a config file.
	Fixtures map[string]string `mapstructure:"fixtures"`
}

var defaultConfig = BaseConfig{
	LogLevel: "info",
}

func newViper() *viper.Viper {
	v := viper.New()

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	return v
}

func loadConfig(v *viper.Viper, configPath string) (BaseConfig, error) {
	// viper.ReadInConfig only returns ConfigFileNotFoundError if it has to search
	// for a default config file, so a missing explicit file is checked here.
	if len(configPath) > 0 {
		if _, err := os.Stat(configPath); err != nil {
			return BaseConfig{}, errors.Wrapf(err, "failed to check if config %s exists", configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return BaseConfig{}, errors.Wrap(err, "failed to load config")
		}
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return BaseConfig{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return config, nil
}

func configureLogger(config BaseConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	logrus.SetOutput(os.Stderr)
}

// buildTable returns the default table extended with the configured fixtures
func buildTable(config BaseConfig) (*fixtures.Table, error) {
	if len(config.Fixtures) == 0 {
		return fixtures.Default(), nil
	}

	names := maps.Keys(config.Fixtures)
	slices.Sort(names)

	entries := make([]fixtures.Entry, 0, len(names))
	for _, name := range names {
		value, err := bytes32.FromBase58(config.Fixtures[name])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid fixture %s", name)
		}

		entries = append(entries, fixtures.Entry{
			Name:  name,
			Value: value,
			Label: config.Fixtures[name],
		})
	}

	table, err := fixtures.Default().With(entries...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extend fixture table")
	}
	return table, nil
}
