package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ruanwillians/indoorTv-core/pkg/config"
)

// NewRedisClient abre la conexión a Redis y verifica con un Ping.
// Con Addr vacío devuelve (nil, nil): el decorador opera en passthrough.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
