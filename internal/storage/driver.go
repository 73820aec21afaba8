package storage

import (
	"context"
	"errors"
)

// The keys under which the session state is stored durably
const (
	KeyToken = "asset_manager_token"
	KeyUser  = "asset_manager_user"
)

// ErrUnavailable is returned by drivers that are used before Initialize succeeded or after Close
var ErrUnavailable = errors.New("storage driver unavailable")

// Driver represents a per-device key-value storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database file)
	Initialize(ctx context.Context) error

	// Available returns whether the driver is able to serve reads and writes
	Available() bool

	// Get retrieves the value stored under key and a boolean indicating whether it was present
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete deletes the value stored under key; deleting a missing key is no error
	Delete(ctx context.Context, key string) error

	// Close closes the storage driver (i.e. closes a database file)
	Close()
}
