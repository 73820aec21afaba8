package desktop

import (
	"context"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// AppName is the name of the directory the configuration file is stored in
const AppName = "asset-manager"

// FileHost stores the configuration as a YAML file
type FileHost struct {
	path string

	mtx      sync.RWMutex
	settings HostSettings
}

var _ Host = (*FileHost)(nil)

// DefaultConfigPath returns the XDG path of the configuration file, creating its parent directories if needed
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, "config.yaml"))
}

// NewFileHost creates a new file host and loads the configuration stored at path.
// An empty path uses DefaultConfigPath.
func NewFileHost(path string) (*FileHost, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigUnavailable, err)
		}
		path = defaultPath
	}
	host := &FileHost{path: path}
	host.load()
	return host, nil
}

// Path returns the path of the configuration file
func (host *FileHost) Path() string {
	return host.path
}

// HasConfig reports whether an API URL has been configured
func (host *FileHost) HasConfig(_ context.Context) (bool, error) {
	host.mtx.RLock()
	defer host.mtx.RUnlock()
	return host.settings.APIURL != "", nil
}

// GetConfig returns a copy of the loaded configuration
func (host *FileHost) GetConfig(_ context.Context) (*HostSettings, error) {
	host.mtx.RLock()
	defer host.mtx.RUnlock()
	settings := host.settings
	return &settings, nil
}

// SaveConfig writes a new configuration to the file
func (host *FileHost) SaveConfig(_ context.Context, apiURL, token string) error {
	host.mtx.Lock()
	defer host.mtx.Unlock()

	host.settings = HostSettings{
		APIURL: apiURL,
		Token:  token,
	}

	if err := os.MkdirAll(filepath.Dir(host.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(&host.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(host.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ClearConfig resets the configuration and removes the file
func (host *FileHost) ClearConfig(_ context.Context) error {
	host.mtx.Lock()
	defer host.mtx.Unlock()
	host.settings = HostSettings{}
	if err := os.Remove(host.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// load reads the configuration file; a missing or unparsable file results in an empty configuration
func (host *FileHost) load() {
	data, err := os.ReadFile(host.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", host.path).Msg("could not read the desktop configuration")
		}
		return
	}
	var settings HostSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Str("path", host.path).Msg("could not parse the desktop configuration")
		return
	}
	host.settings = settings
}
