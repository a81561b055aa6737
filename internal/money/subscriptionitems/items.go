package subscriptionitems

import (
	"context"

	"subscription-items/internal/observability"

	"github.com/stripe/stripe-go/v79"
)

// Operation names recorded in the "operation" field of failure logs.
const (
	OperationCreate = "create"
	OperationGet    = "get"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationList   = "list"
)

// Create adds a new item to a subscription.
func (s *Service) Create(ctx context.Context, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	item, err := invoke(ctx, s, func(svc ItemService) (*stripe.SubscriptionItem, error) {
		return svc.Create(ctx, params, reqOpts)
	})
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "operation", Value: OperationCreate},
			observability.Field{Key: "options", Value: params})
		s.logger.Error(ctx, "error creating subscription item", err)
		return nil, err
	}

	return item, nil
}

// Get retrieves the subscription item with the given ID.
func (s *Service) Get(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	item, err := invoke(ctx, s, func(svc ItemService) (*stripe.SubscriptionItem, error) {
		return svc.Get(ctx, id, params, reqOpts)
	})
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "operation", Value: OperationGet},
			observability.Field{Key: "subscription_item_id", Value: id})
		s.logger.Error(ctx, "error retrieving subscription item", err)
		return nil, err
	}

	return item, nil
}

// Update changes the subscription item with the given ID. Only the fields set
// in params are sent.
func (s *Service) Update(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	item, err := invoke(ctx, s, func(svc ItemService) (*stripe.SubscriptionItem, error) {
		return svc.Update(ctx, id, params, reqOpts)
	})
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "operation", Value: OperationUpdate},
			observability.Field{Key: "subscription_item_id", Value: id},
			observability.Field{Key: "options", Value: params})
		s.logger.Error(ctx, "error updating subscription item", err)
		return nil, err
	}

	return item, nil
}

// Delete removes the subscription item with the given ID from its subscription.
func (s *Service) Delete(ctx context.Context, id string, params *stripe.SubscriptionItemParams, reqOpts *RequestOptions) (*stripe.SubscriptionItem, error) {
	item, err := invoke(ctx, s, func(svc ItemService) (*stripe.SubscriptionItem, error) {
		return svc.Delete(ctx, id, params, reqOpts)
	})
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "operation", Value: OperationDelete},
			observability.Field{Key: "subscription_item_id", Value: id})
		s.logger.Error(ctx, "error deleting subscription item", err)
		return nil, err
	}

	return item, nil
}

// List returns one page of subscription items. Use HasMore and the ID of the
// last item as StartingAfter to fetch the next page.
func (s *Service) List(ctx context.Context, params *stripe.SubscriptionItemListParams, reqOpts *RequestOptions) (*stripe.SubscriptionItemList, error) {
	list, err := invoke(ctx, s, func(svc ItemService) (*stripe.SubscriptionItemList, error) {
		return svc.List(ctx, params, reqOpts)
	})
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "operation", Value: OperationList},
			observability.Field{Key: "options", Value: params})
		s.logger.Error(ctx, "error listing subscription items", err)
		return nil, err
	}

	return list, nil
}
