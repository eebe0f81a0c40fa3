package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-directory/internal/config"
)

// NewRedis returns nil when redis is not configured or not reachable;
// callers treat a nil client as "rate limiting disabled".
func NewRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if !cfg.RateLimitEnabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, rate limiting disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = client.Close()
		return nil
	}

	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return client
}
