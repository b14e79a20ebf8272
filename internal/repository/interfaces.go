package repository

import (
	"context"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
)

// EventRepository defines storage operations for events
type EventRepository interface {
	// Create inserts a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID with category and organizer dereferenced
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Update rewrites the mutable fields of an event
	Update(ctx context.Context, event *domain.Event) error
	// Delete removes an event
	Delete(ctx context.Context, id string) error
	// GetByOrganizer retrieves events organized by a user with pagination
	GetByOrganizer(ctx context.Context, organizerID string, limit, offset int) ([]*domain.Event, int, error)
	// List retrieves events matching the filter with pagination
	List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error)
	// GetRelatedByCategory retrieves events sharing a category, excluding one event
	GetRelatedByCategory(ctx context.Context, categoryID, excludeEventID string, limit, offset int) ([]*domain.Event, int, error)
}

// CategoryRepository defines storage operations for categories
type CategoryRepository interface {
	// Create inserts a new category
	Create(ctx context.Context, category *domain.Category) error
	// GetAll retrieves every category
	GetAll(ctx context.Context) ([]*domain.Category, error)
	// GetByName retrieves a category by its unique display name
	GetByName(ctx context.Context, name string) (*domain.Category, error)
}

// OrderRepository defines storage operations for orders. Orders are written
// by the payment webhook, so only reads live here.
type OrderRepository interface {
	// GetByBuyer retrieves orders purchased by a user with pagination,
	// joined to event and organizer data
	GetByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*domain.Order, int, error)
}

// UserRepository defines storage operations for mirrored identity accounts
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
