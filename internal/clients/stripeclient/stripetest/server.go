// Package stripetest provides a fake Stripe API server for tests that drive
// the real SDK backend over HTTP.
package stripetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"subscription-items/internal/config"
)

const SecretKey = "sk_test_fake"

// Request is a request received by the fake server.
type Request struct {
	Method string
	Path   string
	Form   url.Values
	Header http.Header
}

// Server routes requests by method and path and records everything it receives.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// NewServer starts a fake Stripe API that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers h for requests matching method and path, e.g. ("GET", "/v1/subscription_items/si_1").
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Config returns a Stripe configuration pointing the SDK at this server.
func (s *Server) Config() config.StripeConfig {
	return config.StripeConfig{
		SecretKey:         SecretKey,
		APIURL:            s.URL,
		MaxNetworkRetries: 0,
	}
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request_error", "", err.Error())
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Form:   r.Form,
		Header: r.Header.Clone(),
	})
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		WriteError(w, http.StatusNotFound, "invalid_request_error", "",
			fmt.Sprintf("Unrecognized request URL (%s: %s)", r.Method, r.URL.Path))
		return
	}
	h(w, r)
}

// WriteJSON writes body as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Request-Id", "req_test")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes a Stripe-shaped error response.
func WriteError(w http.ResponseWriter, status int, errType, code, message string) {
	body := map[string]any{
		"type":    errType,
		"message": message,
	}
	if code != "" {
		body["code"] = code
	}
	WriteJSON(w, status, map[string]any{"error": body})
}

// Item returns a subscription item resource as Stripe renders it.
func Item(id, subscription, price string, quantity int64) map[string]any {
	return map[string]any{
		"id":           id,
		"object":       "subscription_item",
		"subscription": subscription,
		"quantity":     quantity,
		"created":      1700000000,
		"metadata":     map[string]string{},
		"price": map[string]any{
			"id":     price,
			"object": "price",
		},
	}
}

// List returns a list envelope for subscription items.
func List(hasMore bool, items ...map[string]any) map[string]any {
	if items == nil {
		items = []map[string]any{}
	}
	return map[string]any{
		"object":   "list",
		"url":      "/v1/subscription_items",
		"has_more": hasMore,
		"data":     items,
	}
}
