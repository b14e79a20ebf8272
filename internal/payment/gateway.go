package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Gateway defines the interface for the external payment processor
type Gateway interface {
	// CreateCheckoutSession builds a hosted checkout session for a ticket
	// purchase and returns the processor-issued redirect target. Order
	// persistence happens via the processor's completion webhook, outside
	// this service.
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error)

	// Name returns the gateway name
	Name() string
}

// CheckoutSessionRequest represents a checkout session request
type CheckoutSessionRequest struct {
	EventID    string
	EventTitle string
	Price      string // decimal-as-string, e.g. "25.00"
	IsFree     bool
	BuyerID    string
	SuccessURL string
	CancelURL  string
}

// CheckoutSessionResponse represents a checkout session response
type CheckoutSessionResponse struct {
	SessionID   string
	RedirectURL string
}

// UnitAmount converts an event price to the processor's integer minor-unit
// amount. Free events always produce a zero-cost line item regardless of the
// stored price string.
func UnitAmount(price string, isFree bool) (int64, error) {
	if isFree {
		return 0, nil
	}
	f, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return int64(math.Round(f * 100)), nil
}
