package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisExpiryQDB int    `mapstructure:"REDIS_EXPIRY_QUEUE_DB"`

	// Gemini API key; extraction falls back to the rule-based path when empty.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Negotiation lifecycle.
	NegotiationTTLHours int  `mapstructure:"NEGOTIATION_TTL_HOURS"`
	ExpiryWorkerEnabled bool `mapstructure:"EXPIRY_WORKER_ENABLED"`

	// Event-request session cache TTL in minutes.
	EventRequestTTLMin int `mapstructure:"EVENT_REQUEST_TTL_MIN"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_EXPIRY_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("NEGOTIATION_TTL_HOURS", 48)
	viper.SetDefault("EXPIRY_WORKER_ENABLED", false)
	viper.SetDefault("EVENT_REQUEST_TTL_MIN", 10)

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

// NegotiationTTL returns the fixed expiry horizon applied to new negotiations.
func NegotiationTTL() time.Duration {
	hours := AppConfig.NegotiationTTLHours
	if hours <= 0 {
		hours = 48
	}
	return time.Duration(hours) * time.Hour
}

// EventRequestTTL returns how long a cached match response stays retrievable.
func EventRequestTTL() time.Duration {
	minutes := AppConfig.EventRequestTTLMin
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}
