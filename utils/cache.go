package utils

import (
	"context"
	"log"
	"time"

	"innsight/config"

	"github.com/go-redis/redis/v8"
)

// ReportCacheClient caches the most recent consistency report per scope.
var ReportCacheClient *redis.Client

// InitReportCache initializes the Redis client used for report caching.
func InitReportCache() {
	ReportCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReportCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (report cache): %v", err)
	}
}

// GetReportCacheClient returns the report cache client.
func GetReportCacheClient() *redis.Client {
	if ReportCacheClient == nil {
		InitReportCache()
	}
	return ReportCacheClient
}

// ReportCacheKey builds the cache key for a scope; an empty propertyID is the
// whole-store report.
func ReportCacheKey(propertyID string) string {
	if propertyID == "" {
		return "audit:report:all"
	}
	return "audit:report:" + propertyID
}

// ReportCacheTTL returns the configured report TTL.
func ReportCacheTTL() time.Duration {
	return time.Duration(config.AppConfig.AuditReportCacheTTLMin) * time.Minute
}
