// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	JWT        JWTConfig
	BcryptCost int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	MigrationsPath string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           int
	MaxRequestSize int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds bearer token settings
type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "file://migrations"
	}
	cfg.Database.MigrationsPath = migrationsPath

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	maxRequestSizeStr := os.Getenv("MAX_REQUEST_SIZE")
	if maxRequestSizeStr == "" {
		maxRequestSizeStr = "1048576" // 1MB, payloads are small JSON documents
	}
	maxRequestSize, err := strconv.ParseInt(maxRequestSizeStr, 10, 64)
	if err != nil || maxRequestSize <= 0 {
		return nil, fmt.Errorf("invalid MAX_REQUEST_SIZE: %s", maxRequestSizeStr)
	}
	cfg.Server.MaxRequestSize = maxRequestSize

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	// Token expiry (default: 24 hours)
	tokenExpiryStr := os.Getenv("JWT_TOKEN_EXPIRY")
	if tokenExpiryStr == "" {
		tokenExpiryStr = "24h"
	}
	tokenExpiry, err := time.ParseDuration(tokenExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TOKEN_EXPIRY: %w", err)
	}
	cfg.JWT.TokenExpiry = tokenExpiry

	// Password hashing cost
	bcryptCostStr := os.Getenv("BCRYPT_COST")
	if bcryptCostStr == "" {
		bcryptCostStr = "10"
	}
	bcryptCost, err := strconv.Atoi(bcryptCostStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	cfg.BcryptCost = bcryptCost

	return cfg, nil
}

// parseOrigins parses comma-separated origins, allowing all when none are given
func parseOrigins(raw string) []string {
	if raw == "" {
		// Default to allow all origins if not specified (for development)
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, origin := range parts {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN returns the database connection string.
// UPDATE reports changed rows only, so rewriting identical values affects zero rows.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
