package config

import (
	"os"
	"strconv"
	"time"
)

// Riot API configuration struct.
type RiotConfiguration struct {
	ApiKey string

	// Routing region for account and match endpoints (americas, europe, asia).
	MainRegion string

	// Platform region for league and mastery endpoints (na1, euw1, ...).
	SubRegion string
}

// Redis configuration struct.
// Redis is optional: an empty host disables the catalog cache backing.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Retry configuration for rate limited upstream calls.
type RetryConfiguration struct {
	MaxAttempts int
	BackoffStep time.Duration
}

var (
	Riot  RiotConfiguration
	Redis RedisConfiguration
	Retry RetryConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the Riot configuration.
	Riot.ApiKey = os.Getenv("RIOT_API_KEY")
	Riot.MainRegion = getEnvOrDefault("RIOT_MAIN_REGION", "americas")
	Riot.SubRegion = getEnvOrDefault("RIOT_SUB_REGION", "na1")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = getEnvOrDefault("REDIS_PORT", "6379")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the retry policy configuration.
	Retry.MaxAttempts = getEnvIntOrDefault("RETRY_MAX_ATTEMPTS", 3)
	Retry.BackoffStep = time.Duration(getEnvIntOrDefault("RETRY_BACKOFF_SECONDS", 2)) * time.Second
}

// Get a environment variable, falling back to a default when unset.
func getEnvOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Get a integer environment variable, falling back to a default when unset or invalid.
func getEnvIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
