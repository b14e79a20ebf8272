package dto

import (
	"time"

	"github.com/BangKartavya/evently/internal/domain"
)

// CheckoutOrderRequest is what the checkout widget submits
type CheckoutOrderRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

// CheckoutOrderResponse carries the processor-hosted redirect target
type CheckoutOrderResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// OrderResponse is the serialized purchase record for the "My Tickets" view
type OrderResponse struct {
	ID          string         `json:"id"`
	EventID     string         `json:"event_id"`
	BuyerID     string         `json:"buyer_id"`
	TotalAmount string         `json:"total_amount"`
	CreatedAt   string         `json:"created_at"`
	Event       *EventResponse `json:"event,omitempty"`
}

// ToOrderResponse converts a domain order to its response DTO
func ToOrderResponse(order *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID,
		EventID:     order.EventID,
		BuyerID:     order.BuyerID,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
	if order.Event != nil {
		resp.Event = ToEventResponse(order.Event)
	}
	return resp
}
