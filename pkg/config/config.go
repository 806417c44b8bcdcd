package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Data locations
	Data DataConfig

	// Database (optional, only needed for --store)
	Database DatabaseConfig

	// Sentiment
	Sentiment SentimentConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DataConfig holds the batch pipeline's input/output directories
type DataConfig struct {
	NewsDir   string // raw news CSV files
	PricesDir string // one <ticker>.csv per ticker
	OutputDir string // annotated CSVs, reports, charts
}

// DatabaseConfig holds PostgreSQL configuration
// URL이 비어있으면 저장 기능은 비활성화됨
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// SentimentConfig holds sentiment labelling thresholds
type SentimentConfig struct {
	PositiveThreshold float64 // score above this → "positive"
	NegativeThreshold float64 // score below this → "negative"
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Data: DataConfig{
			NewsDir:   getEnv("DATA_NEWS_DIR", "data/raw"),
			PricesDir: getEnv("DATA_PRICES_DIR", "data/raw/prices"),
			OutputDir: getEnv("DATA_OUTPUT_DIR", "data/processed"),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Sentiment: SentimentConfig{
			PositiveThreshold: getEnvAsFloat("SENTIMENT_POSITIVE_THRESHOLD", 0.05),
			NegativeThreshold: getEnvAsFloat("SENTIMENT_NEGATIVE_THRESHOLD", -0.05),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Sentiment.PositiveThreshold < c.Sentiment.NegativeThreshold {
		return fmt.Errorf("SENTIMENT_POSITIVE_THRESHOLD must be >= SENTIMENT_NEGATIVE_THRESHOLD")
	}

	return nil
}

// StoreEnabled reports whether a database URL is configured
func (c *Config) StoreEnabled() bool {
	return c.Database.URL != ""
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
