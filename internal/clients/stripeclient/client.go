package stripeclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"subscription-items/internal/config"
	"subscription-items/internal/observability"
	"subscription-items/internal/singleton"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingSecretKey = errors.New("stripe secret key is not configured")

const httpTimeout = 80 * time.Second

// Client lazily builds the authenticated Stripe API client shared by every
// resource service in the process.
type Client struct {
	cfg        config.StripeConfig
	logger     *observability.Logger
	httpClient *http.Client
	api        *singleton.AsyncSingleton[*client.API]
}

// New creates a new Stripe client provider. No network work happens until Get.
func New(cfg config.StripeConfig, logger *observability.Logger) *Client {
	c := &Client{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
	c.api = singleton.New(c.build)
	return c
}

// Get returns the shared Stripe API client, building it on first use.
func (c *Client) Get(ctx context.Context) (*client.API, error) {
	return c.api.Get(ctx)
}

func (c *Client) build(ctx context.Context) (*client.API, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, c.backendConfig()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, c.backendConfig()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, c.backendConfig()),
	}

	api := client.New(c.cfg.SecretKey, backends)

	ctx = observability.WithFields(ctx, observability.Field{Key: "max_network_retries", Value: c.cfg.MaxNetworkRetries})
	c.logger.Info(ctx, "stripe client initialized")

	return api, nil
}

// backendConfig returns a fresh config per backend; the SDK fills in defaults on the value it is given.
func (c *Client) backendConfig() *stripe.BackendConfig {
	cfg := &stripe.BackendConfig{
		HTTPClient:        c.httpClient,
		MaxNetworkRetries: stripe.Int64(c.cfg.MaxNetworkRetries),
		LeveledLogger:     c.logger.Sugared(),
	}
	if c.cfg.APIURL != "" {
		cfg.URL = stripe.String(c.cfg.APIURL)
	}
	return cfg
}

// Close disposes the shared client and drops idle connections.
func (c *Client) Close() error {
	err := c.api.Close()
	c.httpClient.CloseIdleConnections()
	return err
}
