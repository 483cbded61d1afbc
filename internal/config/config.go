package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	BaseURL         string
	AdminUsername   string
	AdminPassword   string
}

// FromEnv builds Config with defaults, overridden by a .env file (when
// present) and environment variables. An empty DB_DSN selects the in-memory
// storage variant.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		BaseURL:         envOrDefault("BASE_URL", "https://godivatech.com"),
		AdminUsername:   envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:   envOrDefault("ADMIN_PASSWORD", "password123"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
