package subscriptionitems

import (
	"context"

	"subscription-items/internal/observability"
	"subscription-items/internal/singleton"
)

// Service exposes typed operations over Stripe subscription items.
//
// The underlying ItemService is built on first use from the ClientProvider
// and shared by every call. Failures are logged once and returned unchanged.
type Service struct {
	logger  *observability.Logger
	service *singleton.AsyncSingleton[ItemService]
}

// New creates a new subscription items service.
func New(provider ClientProvider, logger *observability.Logger) *Service {
	return newService(func(ctx context.Context) (ItemService, error) {
		api, err := provider.Get(ctx)
		if err != nil {
			return nil, err
		}
		return newStripeItemService(api.SubscriptionItems), nil
	}, logger)
}

func newService(factory singleton.Factory[ItemService], logger *observability.Logger) *Service {
	return &Service{
		logger:  logger,
		service: singleton.New(factory),
	}
}

// Close releases the shared item service. Calls made after Close fail with
// singleton.ErrDisposed.
func (s *Service) Close() error {
	return s.service.Close()
}

// invoke resolves the shared item service and runs fn with it. A context that
// is already done stops the call before it reaches Stripe.
func invoke[R any](ctx context.Context, s *Service, fn func(ItemService) (R, error)) (R, error) {
	var zero R
	svc, err := s.service.Get(ctx)
	if err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return fn(svc)
}
