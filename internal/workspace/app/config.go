package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	IdentityIssuer        string // Required: issuer expected on session tokens
	IdentityPublicKeyPath string // Required: path to the identity provider's Ed25519 public key (PEM)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./workspace.db)
	InviteTTL            time.Duration // Optional: lifetime of new invitations (default: 7 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-invitation sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		IdentityIssuer:        getEnvOrDefault("IDENTITY_ISSUER", "teamloft-identity"),
		IdentityPublicKeyPath: getEnvOrDefault("IDENTITY_PUBLIC_KEY_FILE", "identity.pub.pem"),
		DatabaseFile:          getEnvOrDefault("DATABASE_FILE", "workspace.db"),
		InviteTTL:             getEnvDurationOrDefault("INVITE_TTL", 7*24*time.Hour),
		Env:                   getEnvOrDefault("ENV", "dev"),
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:             getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                  getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:   getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:  getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration syntax first (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
