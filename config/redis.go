package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials the Redis behind the persistent key-value store.
// Unlike the databases of a full CMS this is not fatal: the caller
// falls back to the in-memory store when Redis is unreachable.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
	return nil
}
