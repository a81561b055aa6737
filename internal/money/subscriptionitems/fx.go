package subscriptionitems

import (
	"subscription-items/internal/clients/stripeclient"
	"subscription-items/internal/observability"

	"go.uber.org/fx"
)

// Factory returns a new Service sharing the application's Stripe client.
// Whoever calls it owns the Service and must Close it.
type Factory func() *Service

// AsSingleton registers one *Service for the whole application. It is closed
// when the application stops.
//
// Install either AsSingleton or AsScoped, not both: fx rejects the second
// registration of the Stripe client.
func AsSingleton() fx.Option {
	return fx.Options(
		stripeclient.Module,
		fx.Provide(
			newClientProvider,
			newSingletonService,
		),
	)
}

// AsScoped registers a Factory so every unit of work (a request, a job) can
// build and dispose its own Service.
func AsScoped() fx.Option {
	return fx.Options(
		stripeclient.Module,
		fx.Provide(
			newClientProvider,
			NewFactory,
		),
	)
}

// NewFactory builds a Factory over provider.
func NewFactory(provider ClientProvider, logger *observability.Logger) Factory {
	return func() *Service {
		return New(provider, logger)
	}
}

func newClientProvider(c *stripeclient.Client) ClientProvider {
	return c
}

func newSingletonService(lc fx.Lifecycle, provider ClientProvider, logger *observability.Logger) *Service {
	s := New(provider, logger)
	lc.Append(fx.StopHook(s.Close))
	return s
}
