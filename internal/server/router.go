package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	tokenservice "github.com/railzwaylabs/vaultgate/internal/token/service"
	vaultservice "github.com/railzwaylabs/vaultgate/internal/vault/service"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Facades  *vaultservice.Factory
	Tokens   *tokenservice.Service
	Registry *prometheus.Registry
	Ready    *Readiness
}

func NewRouter(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	h := &vaultHandlers{log: p.Log.Named("server.vault"), facades: p.Facades}
	th := &tokenHandlers{log: p.Log.Named("server.tokens"), tokens: p.Tokens}

	v1 := r.Group("/v1/vault")
	v1.POST("/authorize", h.authorize)
	v1.POST("/capture", h.capture)
	v1.GET("/method", h.method)
	v1.GET("/tokens", th.list)
	v1.DELETE("/tokens/:public_hash", th.deactivate)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/readyz", p.Ready.handler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	return r
}

func parseStoreID(c *gin.Context) int64 {
	raw := c.Query("store_id")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
