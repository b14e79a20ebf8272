package payment

import (
	"context"
	"errors"
	"sync"
)

// ErrMockGatewayFailure is returned when the mock gateway is configured to fail
var ErrMockGatewayFailure = errors.New("mock gateway failure")

// MockGateway is a Gateway implementation for tests. It records every
// session request and hands back a canned redirect URL.
type MockGateway struct {
	mu         sync.Mutex
	Requests   []*CheckoutSessionRequest
	ShouldFail bool
	Redirect   string
}

// NewMockGateway creates a new MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{Redirect: "https://checkout.test/session/sess_1"}
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}

// CreateCheckoutSession records the request and returns the canned redirect
func (g *MockGateway) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	if g.ShouldFail {
		return nil, ErrMockGatewayFailure
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Requests = append(g.Requests, req)
	return &CheckoutSessionResponse{
		SessionID:   "sess_1",
		RedirectURL: g.Redirect,
	}, nil
}
