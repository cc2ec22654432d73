// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	DocDB  DocDBConfig
	Store  StoreConfig
	Redis  RedisConfig
	Vault  VaultConfig
	Log    LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host        string
	Port        int
	GinMode     string
	APIKey      string
	CORSOrigins []string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocDBConfig selects the document store backend.
type DocDBConfig struct {
	Type string
}

// StoreConfig holds the store session keys. Values may be vault references
// such as "dotenv://STORE_API_KEY".
type StoreConfig struct {
	APIKey            string
	AuthDomain        string
	DatabaseURL       string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
	MeasurementID     string
}

// RedisConfig holds options for the redis backend.
type RedisConfig struct {
	KeyPrefix    string
	MaxTxRetries int
}

// VaultConfig holds vault configuration.
type VaultConfig struct {
	Type        string
	SecretsFile string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			GinMode:     getEnv("GIN_MODE", "debug"),
			APIKey:      getEnv("SERVER_API_KEY", ""),
			CORSOrigins: getEnvAsList("CORS_ALLOW_ORIGINS"),
		},
		DocDB: DocDBConfig{
			Type: getEnv("DOCDB_TYPE", "mongodb"),
		},
		Store: StoreConfig{
			APIKey:            getEnv("STORE_API_KEY", ""),
			AuthDomain:        getEnv("STORE_AUTH_DOMAIN", ""),
			DatabaseURL:       getEnv("STORE_DATABASE_URL", ""),
			ProjectID:         getEnv("STORE_PROJECT_ID", ""),
			StorageBucket:     getEnv("STORE_STORAGE_BUCKET", ""),
			MessagingSenderID: getEnv("STORE_MESSAGING_SENDER_ID", ""),
			AppID:             getEnv("STORE_APP_ID", ""),
			MeasurementID:     getEnv("STORE_MEASUREMENT_ID", ""),
		},
		Redis: RedisConfig{
			KeyPrefix:    getEnv("REDIS_KEY_PREFIX", ""),
			MaxTxRetries: getEnvAsInt("REDIS_MAX_TX_RETRIES", 10),
		},
		Vault: VaultConfig{
			Type:        getEnv("VAULT_TYPE", "dotenv"),
			SecretsFile: getEnv("VAULT_SECRETS_FILE", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated environment variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
