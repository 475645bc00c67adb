package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// DataSources lists the CSV documents that make up one snapshot, each
	// an http(s) URL or a local file path.
	DataSources []string

	FetchTimeoutMs  int
	MaxConcurrency  int
	RateLimitPerSec float64
	MaxRetries      int

	ExportPath string
	LogLevel   string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataSources: getEnvList("DATA_SOURCES", "./data/consolidated_oem_database.csv"),

		FetchTimeoutMs:  getEnvInt("FETCH_TIMEOUT_MS", 15000),
		MaxConcurrency:  getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitPerSec: getEnvFloat("RATE_LIMIT_PER_SEC", 2),
		MaxRetries:      getEnvInt("MAX_RETRIES", 3),

		ExportPath: getEnv("EXPORT_PATH", "./output/oem_database.csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	sources := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sources = append(sources, p)
		}
	}
	return sources
}
