// Package config loads tool-level configuration for hosts embedding the
// reflection transformer: the default session mode, log verbosity, and
// related knobs. This is distinct from the per-tree lumen.json files the
// mode oracle probes; those travel with the source being compiled, while
// this configuration belongs to the machine running the transformer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lumen-lang/reflectc/errors"
)

// Config is the transformer's own configuration.
type Config struct {
	// SessionMode is the configured session override mode ("never",
	// "default", "always"), empty for none. Loading the configuration does
	// not install it on any oracle.
	SessionMode string `mapstructure:"session_mode"`

	// Verbosity is the default log verbosity when no -v flags are given.
	Verbosity int `mapstructure:"verbosity"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the transformer configuration using Viper.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
// Precedence (lowest to highest): defaults < user config < env vars.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("LUMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if home, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(home, ".lumen", "reflectc.toml")
		if _, err := os.Stat(userConfig); err == nil {
			v.SetConfigFile(userConfig)
			// Missing or malformed user config is not fatal; defaults apply.
			_ = v.MergeInConfig()
		}
	}

	viperInstance = v
	return v
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("session_mode", "")
	v.SetDefault("verbosity", 0)
}
