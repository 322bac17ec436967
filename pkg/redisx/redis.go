package redisx

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect returns a client, or nil when Redis is not configured or unreachable.
// Callers treat a nil client as "caching and rate limiting disabled".
func Connect(ctx context.Context, cfg Config, log *slog.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("redis not configured, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, caching disabled", slog.Any("err", err), slog.String("addr", cfg.Addr))
		_ = client.Close()
		return nil
	}

	log.Info("redis connected", slog.String("addr", cfg.Addr))
	return client
}
