package token

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/config"
	"github.com/railzwaylabs/vaultgate/internal/observability"
	"github.com/railzwaylabs/vaultgate/internal/token/repository"
	"github.com/railzwaylabs/vaultgate/internal/token/service"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var Module = fx.Module("token",
	fx.Provide(repository.New),
	fx.Provide(func(log *zap.Logger, repo *repository.Repository, cache *redis.Client, cfg config.Config, clk clock.Clock, metrics *observability.TokenMetrics) *service.Service {
		return service.New(log, repo, cache, cfg.TokenCacheTTL, clk, metrics)
	}),
	fx.Provide(func(svc *service.Service) domain.TokenStore { return svc }),
)
