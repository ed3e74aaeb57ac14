package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Content backend configuration
	BackendBaseURL        string
	BackendFormEndpoint   string
	BackendFormCode       string
	BackendUploadEndpoint string
	BackendUploadCode     string

	// Upload configuration
	MaxUploadSize int64

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		ReadTimeout:           getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:          getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:           getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		BackendBaseURL:        getEnv("BACKEND_BASE_URL", "https://auth-uat-api.azurewebsites.net"),
		BackendFormEndpoint:   getEnv("BACKEND_FORM_ENDPOINT", "/api/postJanamFormData"),
		BackendFormCode:       getEnv("BACKEND_FORM_CODE", ""),
		BackendUploadEndpoint: getEnv("BACKEND_UPLOAD_ENDPOINT", "/api/UploadMedia"),
		BackendUploadCode:     getEnv("BACKEND_UPLOAD_CODE", ""),
		MaxUploadSize:         getEnvInt64("MAX_UPLOAD_SIZE", 10<<20),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnvInt("DB_PORT", 5432),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBName:                getEnv("DB_NAME", "content_entry_gateway"),
		DBSSLMode:             getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:            int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:            int32(getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:     getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:     getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:   getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.BackendBaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if c.BackendFormEndpoint == "" {
		return fmt.Errorf("BACKEND_FORM_ENDPOINT is required")
	}
	if c.BackendUploadEndpoint == "" {
		return fmt.Errorf("BACKEND_UPLOAD_ENDPOINT is required")
	}
	if c.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be at least 1")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 gets an environment variable as int64 with a default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
