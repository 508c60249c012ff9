// Package config loads storefront settings from defaults, an optional config file
// and STOREFRONT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Page     PageConfig     `mapstructure:"page"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Cart     CartConfig     `mapstructure:"cart"`
	Search   SearchConfig   `mapstructure:"search"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

type HTTPConfig struct {
	Addr      string  `mapstructure:"addr"`
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PageConfig struct {
	// Path of the storefront HTML. Empty uses the embedded page.
	Path string `mapstructure:"path"`
}

type CatalogConfig struct {
	Source   string `mapstructure:"source"`
	YAMLPath string `mapstructure:"yaml_path"`
}

type CartConfig struct {
	SlotKey  string `mapstructure:"slot_key"`
	Currency string `mapstructure:"currency"`
}

type SearchConfig struct {
	RevealStep time.Duration `mapstructure:"reveal_step"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type NotifyConfig struct {
	AMQPURL string `mapstructure:"amqp_url"`
	Queue   string `mapstructure:"queue"`
}

const (
	SourcePage     = "page"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"

	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.rate_limit", 5.0)
	v.SetDefault("http.rate_burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("page.path", "")
	v.SetDefault("catalog.source", SourcePage)
	v.SetDefault("catalog.yaml_path", "")
	v.SetDefault("cart.slot_key", "shoppingCart")
	v.SetDefault("cart.currency", "USD")
	v.SetDefault("search.reveal_step", "100ms")
	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "storefront")
	v.SetDefault("postgres.url", "")
	v.SetDefault("notify.amqp_url", "")
	v.SetDefault("notify.queue", "storefront_notifications")
}

// Load reads the config file at path, or storefront.yaml from the working directory
// or /etc/storefront when path is empty. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("storefront")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/storefront")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and the currency code.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourcePage, SourcePostgres:
	case SourceYAML:
		if c.Catalog.YAMLPath == "" {
			return fmt.Errorf("%w: catalog.yaml_path is required for the yaml source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Cart.SlotKey == "" {
		return fmt.Errorf("%w: cart.slot_key is empty", ErrInvalidConfig)
	}
	if _, err := c.Cart.Unit(); err != nil {
		return err
	}
	if c.HTTP.RateLimit <= 0 || c.HTTP.RateBurst <= 0 {
		return fmt.Errorf("%w: http.rate_limit and http.rate_burst must be positive", ErrInvalidConfig)
	}
	return nil
}

// Unit parses the configured ISO currency code.
func (c CartConfig) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: cart.currency %q: %v", ErrInvalidConfig, c.Currency, err)
	}
	return unit, nil
}

// NeedsPostgres reports whether any configured component talks to Postgres.
func (c Config) NeedsPostgres() bool {
	return c.Catalog.Source == SourcePostgres || c.Storage.Backend == BackendPostgres
}
