package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Readiness reports whether the process can serve traffic: the database must
// answer and, when a cache is configured, redis must answer too.
type Readiness struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewReadiness(db *gorm.DB, cache *redis.Client) *Readiness {
	return &Readiness{db: db, cache: cache}
}

func (r *Readiness) handler(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
		return
	}

	if r.cache != nil {
		if err := r.cache.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
