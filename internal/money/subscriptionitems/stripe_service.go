package subscriptionitems

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/subscriptionitem"
)

// stripeItemService is the ItemService backed by the Stripe SDK resource client.
type stripeItemService struct {
	client *subscriptionitem.Client
}

func newStripeItemService(client *subscriptionitem.Client) *stripeItemService {
	return &stripeItemService{client: client}
}

func (s *stripeItemService) Create(ctx context.Context, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	return s.client.New(itemParams(ctx, params, reqOpts))
}

func (s *stripeItemService) Get(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	return s.client.Get(id, itemParams(ctx, params, reqOpts))
}

func (s *stripeItemService) Update(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	return s.client.Update(id, itemParams(ctx, params, reqOpts))
}

func (s *stripeItemService) Delete(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	return s.client.Del(id, itemParams(ctx, params, reqOpts))
}

// List fetches exactly one page. The SDK iterator loads its first page on
// construction and only pages further when Next is called, which never happens here.
func (s *stripeItemService) List(ctx context.Context, params *stripe.SubscriptionItemListParams, reqOpts *RequestOptions) (*stripe.SubscriptionItemList, error) {
	p := stripe.SubscriptionItemListParams{}
	if params != nil {
		p = *params
	}
	p.Context = ctx
	reqOpts.applyList(&p.ListParams)

	it := s.client.List(&p)
	if err := it.Err(); err != nil {
		return nil, err
	}
	return it.SubscriptionItemList(), nil
}

// itemParams returns a copy of params carrying ctx and the request overrides.
func itemParams(ctx context.Context, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) *stripe.SubscriptionItemParams {
	p := stripe.SubscriptionItemParams{}
	if params != nil {
		p = *params
	}
	p.Context = ctx
	reqOpts.apply(&p.Params)
	return &p
}
