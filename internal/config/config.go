package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Stripe StripeConfig
	Auth   AuthConfig
	Server ServerConfig
}

// StripeConfig holds the settings used to build the Stripe API client
type StripeConfig struct {
	SecretKey string
	// APIURL overrides the Stripe API base URL, e.g. for stripe-mock. Empty means the SDK default.
	APIURL            string
	MaxNetworkRetries int64
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Stripe.SecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	cfg.Stripe.APIURL = os.Getenv("STRIPE_API_URL")

	retries := getEnvWithDefault("STRIPE_MAX_NETWORK_RETRIES", "2")
	cfg.Stripe.MaxNetworkRetries, err = strconv.ParseInt(retries, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STRIPE_MAX_NETWORK_RETRIES: %w", err)
	}
	if cfg.Stripe.MaxNetworkRetries < 0 {
		return nil, fmt.Errorf("STRIPE_MAX_NETWORK_RETRIES must not be negative, got %d", cfg.Stripe.MaxNetworkRetries)
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
