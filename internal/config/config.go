package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, read from environment variables
// (VAULTGATE_* prefix) with an optional vaultgate.yaml alongside the binary.
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`

	DBDriver string `mapstructure:"db_driver"` // "sqlite" or "postgres"
	DBDSN    string `mapstructure:"db_dsn"`

	RedisAddr     string        `mapstructure:"redis_addr"` // empty disables the token cache
	TokenCacheTTL time.Duration `mapstructure:"token_cache_ttl"`

	EventChannel string `mapstructure:"event_channel"`

	LogLevel       string `mapstructure:"log_level"`
	LogDevelopment bool   `mapstructure:"log_development"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VAULTGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "vaultgate.db")
	v.SetDefault("redis_addr", "")
	v.SetDefault("token_cache_ttl", 5*time.Minute)
	v.SetDefault("event_channel", "vaultgate.events")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)

	v.SetConfigName("vaultgate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/vaultgate")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
