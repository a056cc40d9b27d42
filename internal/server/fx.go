package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/config"
)

var Module = fx.Module("server",
	fx.Provide(NewReadiness),
	fx.Provide(NewRouter),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log *zap.Logger, cfg config.Config, router *gin.Engine) {
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
