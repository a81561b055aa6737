package subscriptionitems

import (
	"net/http"

	"github.com/stripe/stripe-go/v79"
)

// RequestOptions are per-request transport overrides. The zero value and nil
// change nothing. The Stripe API version is pinned by the SDK release and
// cannot be overridden per request.
type RequestOptions struct {
	IdempotencyKey string
	// StripeAccount issues the request on behalf of a connected account.
	StripeAccount string
	Headers       http.Header
}

func (o *RequestOptions) apply(p *stripe.Params) {
	if o == nil {
		return
	}
	if o.IdempotencyKey != "" {
		p.IdempotencyKey = stripe.String(o.IdempotencyKey)
	}
	if o.StripeAccount != "" {
		p.StripeAccount = stripe.String(o.StripeAccount)
	}
	if len(o.Headers) > 0 {
		// Clone so the caller's params keep their own header map.
		headers := p.Headers.Clone()
		if headers == nil {
			headers = make(http.Header, len(o.Headers))
		}
		for k, values := range o.Headers {
			for _, v := range values {
				headers.Add(k, v)
			}
		}
		p.Headers = headers
	}
}

// Stripe list params carry no headers or idempotency key.
func (o *RequestOptions) applyList(p *stripe.ListParams) {
	if o == nil {
		return
	}
	if o.StripeAccount != "" {
		p.StripeAccount = stripe.String(o.StripeAccount)
	}
}
