// SPDX-License-Identifier: MIT

// Package config loads CLI settings from .spanforest.yaml, SPANFOREST_* env
// vars and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SPANFOREST"

// Output formats.
const (
	OutputTable = "table"
	OutputTOML  = "toml"
)

// Keys understood by Load.
const (
	KeyOutput   = "output"
	KeyLogLevel = "log_level"
	KeyWatch    = "watch"
	KeyDebounce = "debounce"
	KeyRoot     = "root"
)

var (
	// ErrInvalidOutput indicates an output format other than table or toml.
	ErrInvalidOutput = errors.New("config: output must be \"table\" or \"toml\"")
	// ErrInvalidDebounce indicates a non-positive debounce interval.
	ErrInvalidDebounce = errors.New("config: debounce must be positive")
)

// Config holds all runtime configuration for one CLI invocation.
type Config struct {
	Output   string        `mapstructure:"output"`
	LogLevel string        `mapstructure:"log_level"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
	Root     string        `mapstructure:"root"`
}

// Init points v at cfgFile, or at .spanforest.yaml in the working directory
// and the home directory, and enables SPANFOREST_* overrides. A missing
// config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if v == nil {
		v = viper.GetViper()
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".spanforest")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// Load reads configuration from v (the global viper when nil), applying
// built-in defaults for any values not set by config file, environment, or
// flags.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetDefault(KeyOutput, OutputTable)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyDebounce, 200*time.Millisecond)
	v.SetDefault(KeyRoot, "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the enumerated and range-limited fields.
func (c Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputTOML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, c.Output)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDebounce, c.Debounce)
	}

	return nil
}
