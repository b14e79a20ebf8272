package service

import (
	"context"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
)

// PageSize is the fixed page size for the profile collections
const PageSize = 3

// EventService defines the event actions
type EventService interface {
	// CreateEvent inserts a new event for the organizer and revalidates path.
	// Fails with a NotFound-class error when the organizer does not exist.
	CreateEvent(ctx context.Context, form *dto.EventForm, organizerID, path string) (*domain.Event, error)
	// UpdateEvent mutates an event. Only the recorded organizer may do so;
	// anyone else gets a Forbidden-class error.
	UpdateEvent(ctx context.Context, eventID string, form *dto.EventForm, organizerID, path string) (*domain.Event, error)
	// GetEventByID retrieves a single dereferenced event
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	// GetEventsByUser lists events organized by a user, returning the page
	// slice and the total page count
	GetEventsByUser(ctx context.Context, userID string, page int) ([]*domain.Event, int, error)
	// GetAllEvents lists events matching the filter, returning the page
	// slice and the total page count
	GetAllEvents(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error)
	// GetRelatedEvents lists events sharing a category with the given event
	GetRelatedEvents(ctx context.Context, eventID string, page int) ([]*domain.Event, int, error)
	// DeleteEvent removes an event; organizer only
	DeleteEvent(ctx context.Context, eventID, organizerID, path string) error
}

// OrderService defines the order actions
type OrderService interface {
	// CheckoutOrder builds a checkout session with the payment processor and
	// returns the processor-issued redirect target. Order persistence is the
	// completion webhook's job, not ours.
	CheckoutOrder(ctx context.Context, req *domain.CheckoutRequest) (string, error)
	// GetOrdersByUser lists orders where the user is the buyer, returning
	// the page slice and the total page count
	GetOrdersByUser(ctx context.Context, userID string, page int) ([]*domain.Order, int, error)
}

// CategoryService defines the category actions
type CategoryService interface {
	// GetAllCategories retrieves every category
	GetAllCategories(ctx context.Context) ([]*domain.Category, error)
	// CreateCategory adds a category with a unique display name
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
}
