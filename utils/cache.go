// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"attendly/config"

	"github.com/go-redis/redis/v8"
)

// LocalStoreClient backs the local aggregate store when LOCAL_STORE=redis.
var LocalStoreClient *redis.Client

// InitLocalStoreCache connects the Redis client used for local aggregates.
func InitLocalStoreCache() {
	LocalStoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLocalDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LocalStoreClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Local store): %v", err)
	}
}

// GetLocalStoreClient returns the Redis client for local aggregates.
func GetLocalStoreClient() *redis.Client {
	if LocalStoreClient == nil {
		InitLocalStoreCache()
	}
	return LocalStoreClient
}
