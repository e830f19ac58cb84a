package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	ShopAPIURL      string
	RedisAddr       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CatalogCacheTTL time.Duration
}

// Load reads configuration from the environment. An optional .env file is
// loaded first; missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	requestTimeout, err := getDuration("REQUEST_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("CATALOG_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		ShopAPIURL:      getEnv("SHOP_API_URL", "http://localhost:8000"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
		CatalogCacheTTL: cacheTTL,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultSeconds int) (time.Duration, error) {
	raw := getEnv(key, strconv.Itoa(defaultSeconds))
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(seconds) * time.Second, nil
}
