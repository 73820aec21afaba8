// Package app wires the client core together
package app

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/api"
	"github.com/skybi/asset-manager/internal/auth"
	"github.com/skybi/asset-manager/internal/config"
	"github.com/skybi/asset-manager/internal/desktop"
	"github.com/skybi/asset-manager/internal/model"
	"github.com/skybi/asset-manager/internal/notification"
	"github.com/skybi/asset-manager/internal/storage"
	"github.com/skybi/asset-manager/internal/storage/inmem"
	"github.com/skybi/asset-manager/internal/storage/sqlite"
	"net/http"
	"path/filepath"
)

// stateFileName is the name of the SQLite database inside the state directory
const stateFileName = "state.db"

// Navigator performs the navigation side effects of the client
type Navigator interface {
	// ToLogin leads the user to the login view
	ToLogin()
}

// NavigatorFunc adapts a plain function to the Navigator interface
type NavigatorFunc func()

// ToLogin calls the function itself
func (fn NavigatorFunc) ToLogin() {
	fn()
}

// Options holds the optional dependencies of an App
type Options struct {
	Navigator  Navigator
	Host       desktop.Host
	HTTPClient *http.Client
	Registerer prometheus.Registerer
	UserAgent  string
}

// App represents the client core: durable storage, session, notifications and the API client
type App struct {
	Config        *config.Config
	Storage       storage.Driver
	Auth          *auth.Store
	Notifications *notification.Store
	APIs          *api.Holder
	Bootstrap     *desktop.Bootstrap

	navigator Navigator
}

// New creates a new application using the given configuration
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	app := &App{
		Config:    cfg,
		navigator: opts.Navigator,
	}

	app.Storage = openStorage(ctx, cfg.StateDir)
	app.Auth = auth.New(ctx, app.Storage)

	notifications, err := notification.New()
	if err != nil {
		app.Storage.Close()
		return nil, err
	}
	app.Notifications = notifications

	var clientOpts []api.Option
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(opts.HTTPClient))
	}
	clientOpts = append(clientOpts, api.WithTimeout(cfg.RequestTimeout))
	if opts.Registerer != nil {
		clientOpts = append(clientOpts, api.WithMetrics(api.NewMetrics(opts.Registerer)))
	}
	if opts.UserAgent != "" {
		clientOpts = append(clientOpts, api.WithUserAgent(opts.UserAgent))
	}
	app.APIs = api.NewHolder(func(baseURL string) *api.Client {
		return api.New(baseURL, app.Auth.Token, app.unauthorized, clientOpts...)
	}, cfg.APIBaseURL)

	if cfg.Desktop {
		host := opts.Host
		if host == nil {
			fileHost, err := desktop.NewFileHost(cfg.DesktopConfigFile)
			if err != nil {
				log.Warn().Err(err).Msg("the desktop configuration is unavailable")
			} else {
				host = fileHost
			}
		}
		app.Bootstrap = desktop.NewBootstrap(host, app.Auth, app.APIs)
		if err := app.Bootstrap.InitConfig(ctx); err != nil {
			log.Warn().Err(err).Msg("continuing without desktop configuration")
		}
	}

	return app, nil
}

// API returns the API client currently in use
func (app *App) API() *api.Client {
	return app.APIs.Current()
}

// Login authenticates against the API and stores the resulting session
func (app *App) Login(ctx context.Context, username, password string, remember bool) (*model.User, error) {
	response, err := app.API().Login(ctx, username, password, remember)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, &api.RequestError{Status: http.StatusOK, Message: api.GenericErrorMessage}
	}
	user := response.User
	app.Auth.Login(ctx, response.Token, &user)
	log.Info().Str("username", user.Username).Msg("logged in")
	return &user, nil
}

// Logout forgets the stored session
func (app *App) Logout(ctx context.Context) {
	app.Auth.Logout(ctx)
}

// Report surfaces err to the user as a notification.
// Unauthorized errors are not shown as they already led to a logout.
func (app *App) Report(err error) {
	if err == nil || errors.Is(err, api.ErrUnauthorized) || errors.Is(err, context.Canceled) {
		return
	}
	var requestErr *api.RequestError
	if errors.As(err, &requestErr) {
		app.Notifications.Error(requestErr.Message)
		return
	}
	app.Notifications.Error(err.Error())
}

// Close releases all resources held by the application
func (app *App) Close() {
	if app.Bootstrap != nil {
		app.Bootstrap.Close()
	}
	app.Notifications.Close()
	app.Storage.Close()
}

func (app *App) unauthorized() {
	app.Auth.Logout(context.Background())
	if app.navigator != nil {
		app.navigator.ToLogin()
	}
}

// openStorage opens the SQLite database inside dir and falls back to in-memory storage if that fails
func openStorage(ctx context.Context, dir string) storage.Driver {
	if dir != "" {
		driver := sqlite.New(filepath.Join(dir, stateFileName))
		err := driver.Initialize(ctx)
		if err == nil {
			return driver
		}
		log.Warn().Err(err).Str("dir", dir).Msg("durable storage is unavailable; the session will not survive a restart")
	}
	driver := inmem.New()
	if err := driver.Initialize(ctx); err != nil {
		log.Error().Err(err).Msg("could not initialize in-memory storage")
	}
	return driver
}
