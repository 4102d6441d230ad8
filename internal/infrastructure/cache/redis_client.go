package cache

import (
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client used by the template cache.
//
// Supported env vars:
//   - REDIS_ADDR (empty disables caching; e.g. redis:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (optional; default 0)
//
// A nil return is valid: repositories treat a missing client as
// cache-disabled and read straight from DynamoDB.
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set; template caching disabled")
		return nil
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	log.Printf("[cache][redis] connecting addr=%s db=%d", addr, db)
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
