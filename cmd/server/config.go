package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"sieve/internal/domain/query"
)

// config is the server configuration read from the environment.
type config struct {
	Env             string
	LogLevel        string
	Addr            string
	SchemaPath      string
	ShutdownTimeout time.Duration
	Query           query.Config
}

func loadConfig() config {
	q := query.DefaultConfig()
	q.DefaultLimit = getEnvInt("DEFAULT_LIMIT", q.DefaultLimit)
	q.MaxLimit = getEnvInt("MAX_LIMIT", q.MaxLimit)
	q.ClampLimit = getEnvBool("CLAMP_LIMIT", q.ClampLimit)

	return config{
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Addr:            getEnv("HTTP_ADDR", ":8080"),
		SchemaPath:      getEnv("SCHEMA_PATH", ""),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		Query:           q,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
