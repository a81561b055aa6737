package handler

import (
	"subscription-items/internal/money/subscriptionitems"
	"subscription-items/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	stripeAccountHeader  = "Stripe-Account"
)

type Handler struct {
	service *subscriptionitems.Service
	logger  *observability.Logger
}

func New(service *subscriptionitems.Service, logger *observability.Logger) Handler {
	return Handler{service: service, logger: logger}
}

// requestOptions forwards the caller's idempotency key and connected account to Stripe.
func requestOptions(c *gin.Context) *subscriptionitems.RequestOptions {
	idempotencyKey := c.GetHeader(idempotencyKeyHeader)
	stripeAccount := c.GetHeader(stripeAccountHeader)
	if idempotencyKey == "" && stripeAccount == "" {
		return nil
	}
	return &subscriptionitems.RequestOptions{
		IdempotencyKey: idempotencyKey,
		StripeAccount:  stripeAccount,
	}
}
