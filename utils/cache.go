// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"casexpert/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for session storage.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for sessions (using REDIS_SESSION_DB).
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Sessions): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the Redis client for sessions, or nil if not initialized.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
