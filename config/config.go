package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Audit thresholds. Defaults match the documented engine behavior;
	// deployments may tighten or loosen them without a rebuild.
	AuditPriceCeiling         float64 `mapstructure:"AUDIT_PRICE_CEILING"`
	AuditOutlierMultiplier    float64 `mapstructure:"AUDIT_OUTLIER_MULTIPLIER"`
	AuditPastHorizonYears     int     `mapstructure:"AUDIT_PAST_HORIZON_YEARS"`
	AuditFutureHorizonYears   int     `mapstructure:"AUDIT_FUTURE_HORIZON_YEARS"`
	AuditStalePendingDays     int     `mapstructure:"AUDIT_STALE_PENDING_DAYS"`
	AuditAdvanceBookingYears  int     `mapstructure:"AUDIT_ADVANCE_BOOKING_YEARS"`
	AuditMaxGuests            int     `mapstructure:"AUDIT_MAX_GUESTS"`
	AuditBulkCleanupThreshold int     `mapstructure:"AUDIT_BULK_CLEANUP_THRESHOLD"`
	AuditMaxConcurrentChecks  int     `mapstructure:"AUDIT_MAX_CONCURRENT_CHECKS"`
	AuditCronSpec             string  `mapstructure:"AUDIT_CRON_SPEC"`
	AuditReportCacheTTLMin    int     `mapstructure:"AUDIT_REPORT_CACHE_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "innsight")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)

	viper.SetDefault("AUDIT_PRICE_CEILING", 100000.0)
	viper.SetDefault("AUDIT_OUTLIER_MULTIPLIER", 5.0)
	viper.SetDefault("AUDIT_PAST_HORIZON_YEARS", 2)
	viper.SetDefault("AUDIT_FUTURE_HORIZON_YEARS", 5)
	viper.SetDefault("AUDIT_STALE_PENDING_DAYS", 3)
	viper.SetDefault("AUDIT_ADVANCE_BOOKING_YEARS", 2)
	viper.SetDefault("AUDIT_MAX_GUESTS", 50)
	viper.SetDefault("AUDIT_BULK_CLEANUP_THRESHOLD", 50)
	viper.SetDefault("AUDIT_MAX_CONCURRENT_CHECKS", 4)
	viper.SetDefault("AUDIT_CRON_SPEC", "@daily")
	viper.SetDefault("AUDIT_REPORT_CACHE_TTL_MIN", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
