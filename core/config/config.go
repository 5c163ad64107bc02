package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"toolbox/core/database"
	"toolbox/core/hostenv"
	"toolbox/core/logger"
	"toolbox/core/server"
	"toolbox/core/storage"
	"toolbox/feature/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional config file (toolbox.yaml, toolbox.json, ...).
const FileName = "toolbox"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete service configuration, one section per component.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Log      logger.Config   `mapstructure:"log"`
	HostEnv  hostenv.Config  `mapstructure:"hostenv"`
	Theme    theme.Config    `mapstructure:"theme"`
	Database database.Config `mapstructure:"database"`
	Storage  storage.Config  `mapstructure:"storage"`
}

// LoadConfig reads dir/.env into the environment, then resolves every key from, in
// order of precedence: environment variable, dir/toolbox.{yaml,json,toml}, struct tag
// default. The result is validated before it is returned.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := register(v, reflect.TypeOf(Config{}), ""); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// register walks the section structs and, for each leaf key, binds its environment
// variable (server.api_key -> SERVER_API_KEY) and sets the `default` tag if present.
func register(v *viper.Viper, t reflect.Type, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			if err := register(v, field.Type, key); err != nil {
				return err
			}
			continue
		}

		if def, ok := field.Tag.Lookup("default"); ok {
			v.SetDefault(key, def)
		}
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// EnvName returns the environment variable read for a dotted config key.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Validate rejects values no component could start with.
func (c *Config) Validate() error {
	switch c.Theme.Backend {
	case theme.BackendMemory, theme.BackendDatabase, theme.BackendObject:
	default:
		return fmt.Errorf("%w: theme.backend %q", ErrInvalid, c.Theme.Backend)
	}

	if c.Theme.Backend == theme.BackendDatabase {
		switch c.Database.Driver {
		case database.DriverMySQL, database.DriverSQLite:
		default:
			return fmt.Errorf("%w: database.driver %q", ErrInvalid, c.Database.Driver)
		}
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	if c.Server.BodyLimitBytes < 0 {
		return fmt.Errorf("%w: server.body_limit_bytes must not be negative", ErrInvalid)
	}
	return nil
}
