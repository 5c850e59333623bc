package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment with an
// optional .env file.
type Config struct {
	Host           string
	Port           int
	LogDir         string
	LogLevel       string
	AllowedOrigins []string
	Workers        int
	QueueDepth     int
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on OS environment and defaults")
	}

	return &Config{
		Host:           getEnv("LOT_LEDGER_HOST", "127.0.0.1"),
		Port:           getEnvAsInt("LOT_LEDGER_PORT", 8000),
		LogDir:         getEnv("LOT_LEDGER_LOG_DIR", "logs"),
		LogLevel:       getEnv("LOT_LEDGER_LOG_LEVEL", "info"),
		AllowedOrigins: getEnvAsList("LOT_LEDGER_ALLOWED_ORIGINS", []string{"*"}),
		Workers:        getEnvAsInt("LOT_LEDGER_WORKERS", 1),
		QueueDepth:     getEnvAsInt("LOT_LEDGER_QUEUE_DEPTH", 16),
		RequestTimeout: getEnvAsDuration("LOT_LEDGER_REQUEST_TIMEOUT", 30*time.Second),
		MaxBodyBytes:   getEnvAsInt64("LOT_LEDGER_MAX_BODY_BYTES", 10*1024*1024),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("invalid integer value for %s (%q), using default %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	log.Printf("invalid integer value for %s (%q), using default %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("invalid duration value for %s (%q), using default %s", key, valueStr, fallback)
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
