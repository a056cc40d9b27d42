package event

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/config"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// Module builds the notification sink: logging observer always, redis
// publisher when a cache/broker connection is configured.
var Module = fx.Module("event",
	fx.Provide(func(log *zap.Logger, client *redis.Client, cfg config.Config) domain.EventSink {
		observers := []Observer{NewLoggingObserver(log)}
		if client != nil {
			observers = append(observers, NewRedisObserver(log, client, cfg.EventChannel))
		}
		return NewBus(observers...)
	}),
)
