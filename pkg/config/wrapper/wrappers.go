package wrapper

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/code-payments/code-fixtures/pkg/config"
	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

// ErrUnsuportedConversion indicates the wrapper does not implement conversion from the source type
var ErrUnsuportedConversion = errors.New("config: wrapper conversion from source type not implemented")

// lastKnown holds the state shared by all typed wrappers: the underlying
// config, its default and the last value that was successfully converted.
type lastKnown[T any] struct {
	override     config.Config
	defaultValue T

	stateMu   sync.RWMutex
	lastValue T
}

func (c *lastKnown[T]) setup(override config.Config, defaultValue T) {
	c.override = override
	c.defaultValue = defaultValue
	c.lastValue = defaultValue
}

// getSafe gets a config value and propagates any errors that arise. A best-effort
// attempt is made to return the last known value
func (c *lastKnown[T]) getSafe(ctx context.Context, convert func(interface{}) (T, error)) (T, error) {
	override, err := c.override.Get(ctx)
	c.stateMu.RLock()
	lastValue := c.lastValue
	c.stateMu.RUnlock()
	if err == config.ErrNoValue {
		c.stateMu.Lock()
		c.lastValue = c.defaultValue
		c.stateMu.Unlock()
		return c.defaultValue, nil
	} else if err != nil {
		return lastValue, err
	}

	newValue, err := convert(override)
	if err != nil {
		return lastValue, err
	}

	c.stateMu.Lock()
	c.lastValue = newValue
	c.stateMu.Unlock()
	return newValue, nil
}

// BoolConfig is a utility wrapper for a bool config
type BoolConfig struct {
	lastKnown[bool]
}

// NewBoolConfig returns a new bool config utility wrapper
func NewBoolConfig(override config.Config, defaultValue bool) config.Bool {
	c := &BoolConfig{}
	c.setup(override, defaultValue)
	return c
}

// GetSafe gets a config value and propagates any errors that arise
func (c *BoolConfig) GetSafe(ctx context.Context) (bool, error) {
	return c.getSafe(ctx, func(override interface{}) (bool, error) {
		switch override := override.(type) {
		case []byte:
			return strconv.ParseBool(string(override))
		case bool:
			return override, nil
		default:
			return false, ErrUnsuportedConversion
		}
	})
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *BoolConfig) Get(ctx context.Context) bool {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *BoolConfig) Shutdown() {
	c.override.Shutdown()
}

// EncodingConfig is a utility wrapper for a display encoding config. Values
// are parsed with bytes32.ParseEncoding.
type EncodingConfig struct {
	lastKnown[bytes32.Encoding]
}

// NewEncodingConfig returns a new display encoding config utility wrapper
func NewEncodingConfig(override config.Config, defaultValue bytes32.Encoding) config.Encoding {
	c := &EncodingConfig{}
	c.setup(override, defaultValue)
	return c
}

// GetSafe gets a config value and propagates any errors that arise
func (c *EncodingConfig) GetSafe(ctx context.Context) (bytes32.Encoding, error) {
	return c.getSafe(ctx, func(override interface{}) (bytes32.Encoding, error) {
		switch override := override.(type) {
		case []byte:
			return bytes32.ParseEncoding(string(override))
		case string:
			return bytes32.ParseEncoding(override)
		case bytes32.Encoding:
			return override, nil
		default:
			return 0, ErrUnsuportedConversion
		}
	})
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *EncodingConfig) Get(ctx context.Context) bytes32.Encoding {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *EncodingConfig) Shutdown() {
	c.override.Shutdown()
}
