// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"detailify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs short-lived data: weather snapshots, generated
	// marketing content.
	CacheClient *redis.Client
	// AuthCacheClient holds owner sessions, isolated in its own Redis DB
	// so a cache flush never logs the owner out.
	AuthCacheClient *redis.Client
)

// InitCache connects the general-purpose cache client.
func InitCache() {
	CacheClient = mustConnectRedis("cache", config.AppConfig.RedisCacheDB)
}

// InitAuthCache connects the session cache client.
func InitAuthCache() {
	AuthCacheClient = mustConnectRedis("auth cache", config.AppConfig.RedisAuthDB)
}

func mustConnectRedis(role string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", role, err)
	}
	return client
}

// GetCacheClient returns the general cache client, connecting on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetAuthCacheClient returns the session cache client, connecting on first use.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
