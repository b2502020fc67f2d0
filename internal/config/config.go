// Package config loads the service configuration: struct defaults first,
// then environment variables. A .env file in the working directory is
// loaded into the environment before anything is read.
package config

import (
	"fmt"
	"strings"
	"time"

	"starwars-api/internal/database"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type ServerConfig struct {
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	RateLimit       float64       `koanf:"rate_limit" validate:"min=0"`
	RateBurst       int           `koanf:"rate_burst" validate:"min=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

// Addr is the listen address for Port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	URL string `koanf:"url" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            3000,
			RateBurst:       20,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{URL: database.DefaultURL},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

// envKeys maps the environment variables the service understands to koanf
// paths. Anything else in the environment is ignored.
var envKeys = map[string]string{
	"port":             "server.port",
	"rate_limit":       "server.rate_limit",
	"rate_burst":       "server.rate_burst",
	"shutdown_timeout": "server.shutdown_timeout",
	"database_url":     "database.url",
	"log_level":        "log.level",
	"log_format":       "log.format",
}

// envTransformFunc maps a variable to its koanf path. Unknown or empty
// variables are dropped so they never shadow a default.
func envTransformFunc(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKeys[strings.ToLower(key)], value
}

// Load builds the configuration and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.ProviderWithValue("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
