package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"strings"
	"time"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"development"`

	// APIBaseURL is the address of the asset manager API server; it may be empty to use relative URLs
	APIBaseURL     string        `envconfig:"API_BASE_URL"`
	StateDir       string        `envconfig:"STATE_DIR" default:".asset-manager"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	Desktop           bool   `default:"false"`
	DesktopConfigFile string `envconfig:"DESKTOP_CONFIG_FILE"`
}

// IsEnvProduction returns whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "production"
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("am", config); err != nil {
		return nil, err
	}
	return config, nil
}
