package config

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

var (
	// ErrNoValue indicates no value was set for the config
	ErrNoValue = errors.New("config: no value set")

	// ErrShutdown indicates the use of a Config after calling Shutdown
	ErrShutdown = errors.New("config: shutdown")
)

// Config is an interface for getting a configuration value
type Config interface {
	// Get returns the latest config value
	Get(ctx context.Context) (interface{}, error)

	// Shutdown signals the config to stop all underlying resources
	Shutdown()
}

// Bool provides a boolean typed config.Config.
type Bool interface {
	Get(ctx context.Context) bool
	GetSafe(ctx context.Context) (bool, error)
	Shutdown()
}

// Encoding provides a bytes32.Encoding typed config.Config.
type Encoding interface {
	Get(ctx context.Context) bytes32.Encoding
	GetSafe(ctx context.Context) (bytes32.Encoding, error)
	Shutdown()
}
