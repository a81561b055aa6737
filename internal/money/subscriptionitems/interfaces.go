package subscriptionitems

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=subscriptionitems

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ClientProvider supplies the authenticated Stripe API client.
type ClientProvider interface {
	Get(ctx context.Context) (*client.API, error)
}

// ItemService issues subscription item calls against one Stripe client.
type ItemService interface {
	Create(ctx context.Context, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error)
	Get(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error)
	Update(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error)
	Delete(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error)
	List(ctx context.Context, params *stripe.SubscriptionItemListParams, reqOpts *RequestOptions) (*stripe.SubscriptionItemList, error)
}
