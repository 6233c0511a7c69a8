package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GeminiModel is the fixed model identifier used for every request.
// It is deliberately not runtime-configurable.
const GeminiModel = "gemini-2.5-flash"

// Config holds all application configuration
type Config struct {
	// Server
	Port int
	Env  string // development, production

	// Gemini
	GeminiAPIKey string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:         getEnvAsInt("PORT", 5031),
		Env:          getEnv("ENVIRONMENT", "development"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	// A missing GEMINI_API_KEY is not a load error: the service starts
	// degraded and reports it through the health endpoint instead.
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %d", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}
