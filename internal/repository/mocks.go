package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
)

// ErrMockRepositoryFailure is returned when a mock repository is configured to fail
var ErrMockRepositoryFailure = errors.New("mock repository failure")

// MockEventRepository is an in-memory implementation of EventRepository
type MockEventRepository struct {
	mu         sync.RWMutex
	events     map[string]*domain.Event
	order      []string // insertion order, newest listings first is emulated by reverse
	ShouldFail bool
}

// NewMockEventRepository creates a new MockEventRepository
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{events: make(map[string]*domain.Event)}
}

// Create inserts a new event
func (r *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if r.ShouldFail {
		return ErrMockRepositoryFailure
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *event
	r.events[event.ID] = &copied
	r.order = append(r.order, event.ID)
	return nil
}

// GetByID retrieves an event by ID
func (r *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if r.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

// Update rewrites the mutable fields of an event
func (r *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if r.ShouldFail {
		return ErrMockRepositoryFailure
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.events[event.ID]
	if !ok {
		return errors.New("event not found")
	}
	copied := *event
	copied.OrganizerID = existing.OrganizerID
	copied.CreatedAt = existing.CreatedAt
	r.events[event.ID] = &copied
	return nil
}

// Delete removes an event
func (r *MockEventRepository) Delete(ctx context.Context, id string) error {
	if r.ShouldFail {
		return ErrMockRepositoryFailure
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return errors.New("event not found")
	}
	delete(r.events, id)
	return nil
}

// matchPage slices ids into the requested page
func matchPage(ids []string, limit, offset int) []string {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end]
}

// GetByOrganizer retrieves events organized by a user with pagination
func (r *MockEventRepository) GetByOrganizer(ctx context.Context, organizerID string, limit, offset int) ([]*domain.Event, int, error) {
	if r.ShouldFail {
		return nil, 0, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, id := range r.order {
		if e, ok := r.events[id]; ok && e.OrganizerID == organizerID {
			ids = append(ids, id)
		}
	}

	var events []*domain.Event
	for _, id := range matchPage(ids, limit, offset) {
		copied := *r.events[id]
		events = append(events, &copied)
	}
	return events, len(ids), nil
}

// List retrieves events matching the filter with pagination
func (r *MockEventRepository) List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	if r.ShouldFail {
		return nil, 0, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, id := range r.order {
		e, ok := r.events[id]
		if !ok {
			continue
		}
		if filter.Category != "" && (e.Category == nil || e.Category.Name != filter.Category) {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Query)) {
			continue
		}
		ids = append(ids, id)
	}

	var events []*domain.Event
	for _, id := range matchPage(ids, filter.Limit, filter.Offset()) {
		copied := *r.events[id]
		events = append(events, &copied)
	}
	return events, len(ids), nil
}

// GetRelatedByCategory retrieves events sharing a category, excluding one event
func (r *MockEventRepository) GetRelatedByCategory(ctx context.Context, categoryID, excludeEventID string, limit, offset int) ([]*domain.Event, int, error) {
	if r.ShouldFail {
		return nil, 0, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, id := range r.order {
		if e, ok := r.events[id]; ok && e.CategoryID == categoryID && e.ID != excludeEventID {
			ids = append(ids, id)
		}
	}

	var events []*domain.Event
	for _, id := range matchPage(ids, limit, offset) {
		copied := *r.events[id]
		events = append(events, &copied)
	}
	return events, len(ids), nil
}

// MockCategoryRepository is an in-memory implementation of CategoryRepository
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
	ShouldFail bool
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{categories: make(map[string]*domain.Category)}
}

// Create inserts a new category
func (r *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if r.ShouldFail {
		return ErrMockRepositoryFailure
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

// GetAll retrieves every category ordered by name
func (r *MockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	if r.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var categories []*domain.Category
	for _, c := range r.categories {
		copied := *c
		categories = append(categories, &copied)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// GetByName retrieves a category by its unique display name
func (r *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if r.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

// MockOrderRepository is an in-memory implementation of OrderRepository
type MockOrderRepository struct {
	mu         sync.RWMutex
	orders     []*domain.Order
	ShouldFail bool
}

// NewMockOrderRepository creates a new MockOrderRepository
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Add seeds an order, standing in for the payment webhook write path
func (r *MockOrderRepository) Add(order *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders = append(r.orders, &copied)
}

// GetByBuyer retrieves orders purchased by a user with pagination
func (r *MockOrderRepository) GetByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*domain.Order, int, error) {
	if r.ShouldFail {
		return nil, 0, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			matched = append(matched, o)
		}
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	var page []*domain.Order
	for _, o := range matched[offset:end] {
		copied := *o
		page = append(page, &copied)
	}
	return page, total, nil
}

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*domain.User
	ShouldFail bool
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// Add seeds a mirrored user
func (r *MockUserRepository) Add(user *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
}

// GetByID retrieves a user by ID
func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}
