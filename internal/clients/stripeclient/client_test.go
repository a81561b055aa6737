package stripeclient

import (
	"context"
	"net/http"
	"testing"

	"subscription-items/internal/clients/stripeclient/stripetest"
	"subscription-items/internal/config"
	"subscription-items/internal/observability"
	"subscription-items/internal/singleton"

	"github.com/stripe/stripe-go/v79"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestLogger() (*observability.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return observability.NewLoggerWithCore(core), logs
}

func TestGet_ReturnsSharedClient(t *testing.T) {
	srv := stripetest.NewServer(t)
	logger, logs := newTestLogger()
	c := New(srv.Config(), logger)
	defer c.Close()

	first, err := c.Get(context.Background())
	require.NoError(t, err)
	second, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotNil(t, first.SubscriptionItems)
	assert.Equal(t, 1, logs.FilterMessage("stripe client initialized").Len())
}

func TestGet_UsesConfiguredBackend(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle(http.MethodGet, "/v1/subscription_items/si_123", func(w http.ResponseWriter, r *http.Request) {
		stripetest.WriteJSON(w, http.StatusOK, stripetest.Item("si_123", "sub_123", "price_123", 1))
	})

	logger, _ := newTestLogger()
	c := New(srv.Config(), logger)
	defer c.Close()

	api, err := c.Get(context.Background())
	require.NoError(t, err)

	item, err := api.SubscriptionItems.Get("si_123", &stripe.SubscriptionItemParams{})
	require.NoError(t, err)
	assert.Equal(t, "si_123", item.ID)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "Bearer "+stripetest.SecretKey, requests[0].Header.Get("Authorization"))
}

func TestGet_MissingSecretKey(t *testing.T) {
	logger, _ := newTestLogger()
	c := New(config.StripeConfig{}, logger)
	defer c.Close()

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrMissingSecretKey)

	// Failures are not cached.
	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestGet_CancelledContext(t *testing.T) {
	srv := stripetest.NewServer(t)
	logger, _ := newTestLogger()
	c := New(srv.Config(), logger)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.Get(context.Background())
	assert.NoError(t, err)
}

func TestClose(t *testing.T) {
	srv := stripetest.NewServer(t)
	logger, _ := newTestLogger()
	c := New(srv.Config(), logger)

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, singleton.ErrDisposed)
}
