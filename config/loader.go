package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable consulted for the API key.
const EnvAPIKey = "TRANSPORT_NSW_API_KEY"

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error as long as the API key is
// available from the environment.
func LoadAppConfig() error {
	paths := []string{"config.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tripplanner", "config.yml"))
	}

	var cfg AppConfig
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.API.Key = key
	}
	if cfg.API.Key == "" {
		return errors.New("no API key: set api.key in config.yml or " + EnvAPIKey)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}

	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	Config = cfg
	return nil
}
