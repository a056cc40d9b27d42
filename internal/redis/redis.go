package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/railzwaylabs/vaultgate/internal/config"
)

// New returns the process redis client, or nil when no address is configured.
// Consumers treat a nil client as "cache disabled".
func New(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
