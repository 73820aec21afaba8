// Package desktop bootstraps the client configuration stored by the desktop host
package desktop

import (
	"context"
	"errors"
)

// ErrConfigUnavailable is returned if the host configuration cannot be accessed
var ErrConfigUnavailable = errors.New("host configuration is unavailable")

// HostSettings represents the configuration the desktop host stores
type HostSettings struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"token"`
}

// Host represents a desktop host able to persist the client configuration
type Host interface {
	// HasConfig reports whether an API URL has been configured
	HasConfig(ctx context.Context) (bool, error)

	// GetConfig returns the stored configuration
	GetConfig(ctx context.Context) (*HostSettings, error)

	// SaveConfig stores a new configuration
	SaveConfig(ctx context.Context, apiURL, token string) error
}
