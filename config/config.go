package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	FrontendURL string
	// Scraper/matcher service (the dashboard proxies it)
	SaraminAPIURL string
	// Cache substrate: "memory", "file", or "redis"
	CacheBackend string
	CacheDir     string
	RedisURL     string
	// Background refresh
	RefreshIntervalMinutes int
	SweepIntervalMinutes   int
	// Device class for the display window (px); below 768 renders 10 per
	// page instead of 15
	ViewportWidth int
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in deployments without the file
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SaraminAPIURL: strings.TrimRight(getEnv("SARAMIN_API_URL", ""), "/"),

		CacheBackend: getEnv("CACHE_BACKEND", "file"),
		CacheDir:     getEnv("CACHE_DIR", "./data/cache"),
		RedisURL:     getEnv("REDIS_URL", ""),

		RefreshIntervalMinutes: getEnvInt("REFRESH_INTERVAL_MINUTES", 30),
		SweepIntervalMinutes:   getEnvInt("SWEEP_INTERVAL_MINUTES", 10),
		ViewportWidth:          getEnvInt("VIEWPORT_WIDTH", 1280),

		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 100),
	}

	if cfg.SaraminAPIURL == "" {
		log.Println("WARNING: SARAMIN_API_URL not set. All remote calls will use bundled fallback data.")
	}
	if cfg.CacheBackend == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: CACHE_BACKEND=redis but REDIS_URL is empty. Falling back to file cache.")
		cfg.CacheBackend = "file"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
