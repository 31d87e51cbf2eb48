package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"sekolahku_backend/internals/configs"
)

// Redis is nil when REDIS_ADDR is not configured; callers must treat the
// cache as optional.
var Redis *redis.Client

func ConnectRedis() {
	if configs.RedisAddr == "" {
		log.Println("[REDIS] REDIS_ADDR not set, cache disabled")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] ping failed, cache disabled: %v", err)
		return
	}

	Redis = rdb
	log.Println("[REDIS] connected.")
}
