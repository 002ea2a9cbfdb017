package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SessionKey string // Required: secret for signing session cookies
	MemberPass string // Optional: passphrase granting member status (empty disables promotion)
	AdminPass  string // Optional: passphrase granting admin status (empty disables promotion)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./board.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SessionKey:          os.Getenv("SESSION_KEY"),
		MemberPass:          os.Getenv("MEMBER_PASS"),
		AdminPass:           os.Getenv("ADMIN_PASS"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "board.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations that cannot serve safely. The promotion
// passphrases are allowed to be empty, which just disables that promotion.
func (c Config) Validate() error {
	if c.SessionKey == "" {
		return errors.New("SESSION_KEY must be set")
	}
	return nil
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers read as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
