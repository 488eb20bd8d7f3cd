package env

import (
	"context"
	"os"
	"strings"

	"github.com/code-payments/code-fixtures/pkg/config"
	"github.com/code-payments/code-fixtures/pkg/config/wrapper"
	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

type conf struct {
	val string
}

// NewConfig reads key from the environment once. Keys are upper cased.
func NewConfig(key string) config.Config {
	client := &conf{
		val: os.Getenv(strings.ToUpper(key)),
	}

	return client
}

// Get implements Config.Get
func (c *conf) Get(ctx context.Context) (interface{}, error) {
	if len(c.val) == 0 {
		return nil, config.ErrNoValue
	}

	return []byte(c.val), nil
}

// Shutdown implements Config.Shutdown
func (c *conf) Shutdown() {
}

// NewBoolConfig creates a env-based bool config
func NewBoolConfig(key string, defaultValue bool) config.Bool {
	return wrapper.NewBoolConfig(NewConfig(key), defaultValue)
}

// NewEncodingConfig creates a env-based display encoding config
func NewEncodingConfig(key string, defaultValue bytes32.Encoding) config.Encoding {
	return wrapper.NewEncodingConfig(NewConfig(key), defaultValue)
}
