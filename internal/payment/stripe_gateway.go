package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeGateway implements Gateway using Stripe Checkout
type StripeGateway struct {
	currency string
}

// StripeConfig holds Stripe gateway configuration
type StripeConfig struct {
	SecretKey string
	Currency  string
}

// NewStripeGateway creates a new StripeGateway and sets the API key
func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey

	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &StripeGateway{currency: currency}
}

// Name returns the gateway name
func (g *StripeGateway) Name() string {
	return "stripe"
}

// CreateCheckoutSession builds a Stripe Checkout session: one line item named
// after the event, quantity 1, buyer and event IDs as session metadata
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	amount, err := UnitAmount(req.Price, req.IsFree)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.EventTitle),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"eventId": req.EventID,
			"buyerId": req.BuyerID,
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSessionResponse{
		SessionID:   s.ID,
		RedirectURL: s.URL,
	}, nil
}
