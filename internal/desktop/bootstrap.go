package desktop

import (
	"context"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/api"
	"github.com/skybi/asset-manager/internal/auth"
	"github.com/skybi/asset-manager/internal/observable"
)

// Config represents the client configuration
type Config struct {
	APIURL     string
	Configured bool
}

// Bootstrap loads the host configuration into the client.
// Every change of the configuration points the API client holder at the configured URL.
type Bootstrap struct {
	host   Host
	auth   *auth.Store
	holder *api.Holder

	config      *observable.Value[Config]
	unsubscribe func()
}

// NewBootstrap creates a new bootstrap; host may be nil if the application does not run on a desktop host
func NewBootstrap(host Host, authStore *auth.Store, holder *api.Holder) *Bootstrap {
	bootstrap := &Bootstrap{
		host:   host,
		auth:   authStore,
		holder: holder,
		config: observable.New(Config{
			APIURL: holder.Current().BaseURL(),
		}),
	}
	bootstrap.unsubscribe = bootstrap.config.Subscribe(func(config Config) {
		holder.Reconfigure(config.APIURL)
	})
	return bootstrap
}

// InitConfig loads the host configuration.
// ErrConfigUnavailable is returned if the host is absent or fails; the client then stays unconfigured.
func (bootstrap *Bootstrap) InitConfig(ctx context.Context) error {
	if bootstrap.host == nil {
		return ErrConfigUnavailable
	}

	hasConfig, err := bootstrap.host.HasConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load the host configuration")
		return fmt.Errorf("%w: %w", ErrConfigUnavailable, err)
	}
	if !hasConfig {
		return nil
	}

	settings, err := bootstrap.host.GetConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load the host configuration")
		return fmt.Errorf("%w: %w", ErrConfigUnavailable, err)
	}
	bootstrap.config.Set(Config{
		APIURL:     settings.APIURL,
		Configured: true,
	})
	if settings.Token != "" {
		bootstrap.auth.SetFromConfig(ctx, settings.Token)
	}
	return nil
}

// SaveConfig stores a new configuration at the host and applies it
func (bootstrap *Bootstrap) SaveConfig(ctx context.Context, apiURL, token string) error {
	if bootstrap.host == nil {
		return ErrConfigUnavailable
	}
	if err := bootstrap.host.SaveConfig(ctx, apiURL, token); err != nil {
		log.Error().Err(err).Msg("failed to save the host configuration")
		return err
	}
	bootstrap.config.Set(Config{
		APIURL:     apiURL,
		Configured: true,
	})
	return nil
}

// Config returns the current configuration
func (bootstrap *Bootstrap) Config() Config {
	return bootstrap.config.Get()
}

// Subscribe registers fn to be called with the current and every future configuration
func (bootstrap *Bootstrap) Subscribe(fn func(Config)) (unsubscribe func()) {
	return bootstrap.config.Subscribe(fn)
}

// Close stops following configuration changes
func (bootstrap *Bootstrap) Close() {
	if bootstrap.unsubscribe != nil {
		bootstrap.unsubscribe()
		bootstrap.unsubscribe = nil
	}
}
