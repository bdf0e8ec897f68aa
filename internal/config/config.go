package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port                   string
	Version                string
	LogLevel               string
	OpenAIKey              string
	OpenAIModel            string  // Chat model used for sequence generation
	OpenAITimeout          int     // OpenAI API timeout in seconds, per contact
	Temperature            float32 // Default sampling temperature
	DataDir                string  // Directory holding account/contact JSON shards
	StoreBackend           string  // memory, file or mysql
	StoreFile              string  // Snapshot path for the file backend
	DatabaseURL            string  // MySQL DSN for the mysql backend
	AccountCacheTTLMinutes int     // TTL for the parsed account data cache
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Version:                getEnv("VERSION", "1.0.0"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		OpenAIKey:              os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout:          getEnvInt("OPENAI_TIMEOUT", 120),
		Temperature:            getEnvFloat("TEMPERATURE", 0.7),
		DataDir:                getEnv("DATA_DIR", "./data"),
		StoreBackend:           getEnv("STORE_BACKEND", "memory"),
		StoreFile:              getEnv("STORE_FILE", "./data/saved_emails.json"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		AccountCacheTTLMinutes: getEnvInt("ACCOUNT_CACHE_TTL_MINUTES", 10),
	}
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float32 with a default fallback
func getEnvFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatValue)
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "outreach").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
