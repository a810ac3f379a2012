// Package config reads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything cmd/server needs to wire the application.
type Config struct {
	Port   string
	DBPath string

	CoinGeckoBaseURL           string
	CoinGeckoAPIKey            string
	CoinGeckoRequestsPerMinute int

	RefreshInterval time.Duration
	NotificationTTL time.Duration

	CORSOrigins      []string
	FrontendDistPath string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./crypto_tracker.db"),

		CoinGeckoBaseURL:           getEnv("COINGECKO_BASE_URL", ""),
		CoinGeckoAPIKey:            getEnv("COINGECKO_API_KEY", ""),
		CoinGeckoRequestsPerMinute: getEnvInt("COINGECKO_REQUESTS_PER_MINUTE", 30),

		RefreshInterval: getEnvSeconds("REFRESH_INTERVAL_SECONDS", 60),
		NotificationTTL: getEnvSeconds("NOTIFICATION_TTL_SECONDS", 5),

		CORSOrigins:      getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		FrontendDistPath: getEnv("FRONTEND_DIST_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
