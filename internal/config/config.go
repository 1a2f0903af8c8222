// Package config assembles the runtime configuration.
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults
//  2. A TOML file (--config, or ./servico.toml when present)
//  3. SERVICO_* environment variables, with a .env file in the working
//     directory loaded into the environment first
//
// Environment keys drop the prefix, are lowercased and use a double
// underscore for nesting: SERVICO_SERVER__ADDR sets server.addr.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment before any env lookup.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/custodia-labs/servico/internal/adapters/driven/config/file"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "SERVICO_"

// DefaultFile is read when no config file is named and it exists.
const DefaultFile = "servico.toml"

// Config is the root configuration object.
type Config struct {
	Env     string        `koanf:"env" validate:"oneof=development production test"`
	Log     LogConfig     `koanf:"log"`
	Server  ServerConfig  `koanf:"server"`
	Metrics MetricsConfig `koanf:"metrics"`
	Storage StorageConfig `koanf:"storage"`
	IDs     IDsConfig     `koanf:"ids"`
	Display DisplayConfig `koanf:"display"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// ServerConfig configures the gRPC listener. A zero RateLimit disables
// rate limiting.
type ServerConfig struct {
	Addr      string  `koanf:"addr" validate:"required,hostname_port"`
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`
}

// MetricsConfig configures the metrics and health listener. An empty Addr
// disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr" validate:"omitempty,hostname_port"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver  string `koanf:"driver" validate:"oneof=json sqlite postgres memory"`
	DataDir string `koanf:"data_dir" validate:"required_if=Driver json,required_if=Driver sqlite"`
	Naming  string `koanf:"naming" validate:"oneof=en pt"`
	DSN     string `koanf:"dsn" validate:"required_if=Driver postgres"`
}

// IDsConfig selects the identifier policy.
type IDsConfig struct {
	Policy string `koanf:"policy" validate:"oneof=sequential random"`
}

// DisplayConfig selects the label locale.
type DisplayConfig struct {
	Locale string `koanf:"locale" validate:"oneof=en pt-BR"`
}

// Defaults returns the built-in values as flat koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"env":               "development",
		"log.level":         "info",
		"log.format":        "console",
		"server.addr":       ":50051",
		"server.rate_limit": 0.0,
		"server.rate_burst": 0,
		"metrics.addr":      "",
		"storage.driver":    "json",
		"storage.data_dir":  "data",
		"storage.naming":    "en",
		"storage.dsn":       "",
		"ids.policy":        "sequential",
		"display.locale":    "en",
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. An empty path reads DefaultFile if it exists; a named
// file must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, val := range Defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	filePath, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	if filePath != "" {
		store, err := file.NewConfigStore(filePath)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		if err := overlay(k, store); err != nil {
			return nil, err
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay copies every key of store over the values already in k.
func overlay(k *koanf.Koanf, store driven.ConfigStore) error {
	for key, val := range store.All() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting %s from %s: %w", key, store.Path(), err)
		}
	}
	return nil
}

func resolveFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}
	return DefaultFile, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WriteDefaults writes the built-in values to a TOML file at path.
func WriteDefaults(path string) error {
	store, err := file.NewConfigStore(path)
	if err != nil {
		return err
	}
	return save(store, Defaults())
}

// save sets every key of values on store and persists it.
func save(store driven.ConfigStore, values map[string]any) error {
	for key, val := range values {
		store.Set(key, val)
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("writing %s: %w", store.Path(), err)
	}
	return nil
}
