package domain

import "time"

// Order records a ticket purchase. Orders are created exclusively by the
// payment processor's completion webhook; this service only reads them.
type Order struct {
	ID          string    `json:"id"`
	StripeID    string    `json:"stripe_id"`
	EventID     string    `json:"event_id"`
	BuyerID     string    `json:"buyer_id"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`

	// Dereferenced on reads for the profile "My Tickets" collection
	Event *Event `json:"event,omitempty"`
}

// CheckoutRequest carries what the checkout widget submits for an event
type CheckoutRequest struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	Price      string `json:"price"`
	IsFree     bool   `json:"is_free"`
	BuyerID    string `json:"buyer_id"`
}
