package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("JWT_SECRET", "secret")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_API_URL", "")
	t.Setenv("STRIPE_MAX_NETWORK_RETRIES", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("WEBAPP_URI", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Empty(t, cfg.Stripe.APIURL)
	assert.Equal(t, int64(2), cfg.Stripe.MaxNetworkRetries)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.WebAppURI)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_API_URL", "http://localhost:12111")
	t.Setenv("STRIPE_MAX_NETWORK_RETRIES", "0")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:12111", cfg.Stripe.APIURL)
	assert.Equal(t, int64(0), cfg.Stripe.MaxNetworkRetries)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "stripe secret key", unset: "STRIPE_SECRET_KEY"},
		{name: "jwt secret", unset: "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := FromEnv()
			if !errors.Is(err, ErrEmptyEnvironmentVariable) {
				t.Errorf("expected ErrEmptyEnvironmentVariable, got %v", err)
			}
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestFromEnv_InvalidNumbers(t *testing.T) {
	t.Run("retries not a number", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STRIPE_MAX_NETWORK_RETRIES", "many")
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("negative retries", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STRIPE_MAX_NETWORK_RETRIES", "-1")
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("port not a number", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SERVER_PORT", "eighty")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
