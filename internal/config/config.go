// Package config loads the optional .computor.yaml settings file.
//
// The file is parsed with yaml.v3, which also accepts JSON documents.
// A missing file is not an error: Default() applies.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when --config is not given.
const DefaultPath = ".computor.yaml"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheFile   = "file"
	CacheRedis  = "redis"
	CacheBadger = "badger"
)

// Config holds every setting the CLI can read from disk.
type Config struct {
	LogLevel      string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Output        string       `yaml:"output" validate:"oneof=text json markdown md"`
	StrictFactors bool         `yaml:"strict_factors"`
	Workers       int          `yaml:"workers" validate:"min=1,max=256"`
	Cache         CacheConfig  `yaml:"cache"`
	Server        ServerConfig `yaml:"server"`
}

// CacheConfig selects and configures the report cache.
type CacheConfig struct {
	Backend string        `yaml:"backend" validate:"oneof=none memory file redis badger"`
	Path    string        `yaml:"path" validate:"required_if=Backend file,required_if=Backend badger"`
	TTL     time.Duration `yaml:"ttl" validate:"min=0"` // redis and badger only
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig is used when Cache.Backend is "redis".
type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required,hostname_port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0,max=15"`
	Prefix   string `yaml:"prefix"`
}

// ServerConfig configures `computor serve`.
type ServerConfig struct {
	Addr    string `yaml:"addr" validate:"required"`
	Metrics bool   `yaml:"metrics"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Output:   "text",
		Workers:  4,
		Cache: CacheConfig{
			Backend: CacheNone,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "computor:report:",
			},
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Metrics: true,
		},
	}
}

// Load reads path over Default() and validates the result.
// When path is empty DefaultPath is tried, and its absence is ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SetCacheBackend switches the cache backend, filling in a default path
// for the on-disk backends when none is configured.
func (c *Config) SetCacheBackend(backend string) {
	c.Cache.Backend = backend
	if c.Cache.Path != "" {
		return
	}
	switch backend {
	case CacheFile:
		c.Cache.Path = ".computor/cache"
	case CacheBadger:
		c.Cache.Path = ".computor/badger"
	}
}
