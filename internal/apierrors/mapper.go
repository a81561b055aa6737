package apierrors

import (
	"context"
	"errors"
	"net/http"

	"subscription-items/internal/clients/stripeclient"
	"subscription-items/internal/singleton"

	"github.com/stripe/stripe-go/v79"
)

// MapError converts domain and Stripe errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return mapStripeError(stripeErr)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return GatewayTimeout("The payment provider did not respond in time.", err)

	case errors.Is(err, singleton.ErrDisposed):
		return ServiceUnavailable(CodeServiceUnavailable, "The service is shutting down.", err)

	case errors.Is(err, stripeclient.ErrMissingSecretKey):
		return ServiceUnavailable(CodePaymentProviderError, "Payment provider is not configured.", err)

	default:
		return InternalError(err)
	}
}

// mapStripeError keeps Stripe's client-side errors visible to the caller and
// hides everything else behind a gateway error.
func mapStripeError(err *stripe.Error) *APIError {
	code := string(err.Code)
	if code == "" {
		code = string(err.Type)
	}

	switch {
	case err.HTTPStatusCode == http.StatusTooManyRequests:
		return TooManyRequests("Too many requests to the payment provider. Please retry later.")

	case err.Type == stripe.ErrorTypeCard:
		return &APIError{StatusCode: http.StatusPaymentRequired, Code: CodeCardDeclined, Message: err.Msg}

	case err.HTTPStatusCode == http.StatusNotFound:
		return NotFound(CodeNotFound, err.Msg)

	case err.HTTPStatusCode == http.StatusConflict:
		return Conflict(CodeConflict, err.Msg)

	case err.HTTPStatusCode == http.StatusUnauthorized, err.HTTPStatusCode == http.StatusForbidden:
		return BadGateway(CodePaymentProviderError, "Payment provider rejected the service credentials.", err)

	case err.HTTPStatusCode >= 400 && err.HTTPStatusCode < 500:
		return BadRequest(code, err.Msg)

	default:
		return BadGateway(CodePaymentProviderError, "Payment provider is temporarily unavailable. Please try again later.", err)
	}
}
