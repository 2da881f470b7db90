package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/lanavaja/barberia-api/internal/config"
	dbpkg "github.com/lanavaja/barberia-api/internal/db"
	"github.com/lanavaja/barberia-api/internal/logger"
	"github.com/lanavaja/barberia-api/internal/metrics"
	"github.com/lanavaja/barberia-api/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogDir, cfg.LogDebug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg, zlog)

	rdb := newRedis(cfg, zlog)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, rdb, cfg, zlog)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

// newRedis connects the slot cache. Redis being down degrades caching,
// never the API itself.
func newRedis(cfg *config.Config, zlog *zap.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zlog.Warn("invalid REDIS_URL, slot cache disabled", zap.Error(err))
		return nil
	}
	return redis.NewClient(opts)
}
