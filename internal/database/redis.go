package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Redis *redis.Client

func ConnectRedis(ctx context.Context, addr, password string, db int) error {
	Redis = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := Redis.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("unable to connect to redis: %w", err)
	}

	log.Info().Str("addr", addr).Msg("connected to Redis")
	return nil
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
