// Package config centralises configuration parsing for the excuse service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPort is used when neither PORT nor a CLI port is supplied.
const DefaultPort = "8000"

// Config captures runtime configuration values for the excuse service.
type Config struct {
	Port            string
	HTTPAddress     string // Overrides the ":<Port>" listen address when set.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	LogFormat       string
}

// LoadDotEnv loads variables from .env style files without overriding the
// process environment. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", DefaultPort),
		HTTPAddress:     getEnv("HTTP_ADDRESS", ""),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    getInt64Env("MAX_BODY_BYTES", 1<<20),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
	}
}

// Address returns the listen address.
func (c Config) Address() string {
	if c.HTTPAddress != "" {
		return c.HTTPAddress
	}
	return ":" + c.Port
}

// WithPort returns a copy of c listening on port. An explicit port clears
// any HTTP_ADDRESS override.
func (c Config) WithPort(port string) (Config, error) {
	if err := ValidatePort(port); err != nil {
		return c, err
	}
	c.Port = port
	c.HTTPAddress = ""
	return c, nil
}

// ValidatePort checks that port is a TCP port number.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
