package config

import (
	"os"
	"time"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	CoinGecko CoinGeckoConfig
	Output    OutputConfig
	Database  DatabaseConfig
}

type AppConfig struct {
	Environment string // "development" or "production"
	LogLevel    string
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CoinGeckoConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

type OutputConfig struct {
	Dir string
}

type DatabaseConfig struct {
	// Path to the sqlite database recording generation runs. Empty disables
	// persistence in the generator; the HTTP server requires a path.
	Path string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "production"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", ""),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL:        getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
			APIKey:         getEnv("COINGECKO_API_KEY", ""),
			RequestTimeout: getDurationEnv("COINGECKO_REQUEST_TIMEOUT", 30*time.Second),
		},
		Output: OutputConfig{
			Dir: getEnv("TOKENLIST_OUTPUT_DIR", "."),
		},
		Database: DatabaseConfig{
			Path: getEnv("TOKENLIST_DB", ""),
		},
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
