// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tourbase/config"
)

var (
	// CacheClient is the generic cache client (tour and departure caching).
	CacheClient *redis.Client
	// SessionCacheClient holds in-progress booking sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetSessionCacheClient returns the booking-session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	}
	return SessionCacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	}
	return AuthCacheClient
}
