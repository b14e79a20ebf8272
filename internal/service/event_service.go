package service

import (
	"context"
	"time"

	"github.com/BangKartavya/evently/internal/cache"
	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
	"github.com/BangKartavya/evently/internal/repository"
	"github.com/BangKartavya/evently/pkg/logger"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// eventService implements the EventService interface
type eventService struct {
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	revalidator cache.Revalidator
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, revalidator cache.Revalidator) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		revalidator: revalidator,
	}
}

// revalidate drops the cached render for path. Best effort: a stale page is
// not worth failing the action over.
func (s *eventService) revalidate(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.revalidator.Revalidate(ctx, path); err != nil {
		logger.WithContext(ctx).Warn("path revalidation failed",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// CreateEvent inserts a new event for the organizer
func (s *eventService) CreateEvent(ctx context.Context, form *dto.EventForm, organizerID, path string) (*domain.Event, error) {
	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, normalize(ctx, "createEvent", err)
	}
	if organizer == nil {
		return nil, normalize(ctx, "createEvent", domain.NotFound("Organizer not found"))
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		ImageURL:    form.ImageURL,
		StartAt:     form.StartAt,
		EndAt:       form.EndAt,
		CategoryID:  form.CategoryID,
		Price:       form.Price,
		IsFree:      form.IsFree,
		URL:         form.URL,
		OrganizerID: organizerID,
		CreatedAt:   time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, normalize(ctx, "createEvent", err)
	}

	s.revalidate(ctx, path)

	created, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, normalize(ctx, "createEvent", err)
	}
	if created == nil {
		// The row we just inserted is gone; surface as unhandled
		return nil, normalize(ctx, "createEvent", domain.NotFound("Event not found"))
	}
	return created, nil
}

// UpdateEvent mutates an event on behalf of its organizer
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, form *dto.EventForm, organizerID, path string) (*domain.Event, error) {
	existing, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, normalize(ctx, "updateEvent", err)
	}
	if existing == nil {
		return nil, normalize(ctx, "updateEvent", domain.NotFound("Event not found"))
	}
	if existing.OrganizerID != organizerID {
		return nil, normalize(ctx, "updateEvent", domain.Forbidden("Unauthorized or event not found"))
	}

	existing.Title = form.Title
	existing.Description = form.Description
	existing.Location = form.Location
	existing.ImageURL = form.ImageURL
	existing.StartAt = form.StartAt
	existing.EndAt = form.EndAt
	existing.CategoryID = form.CategoryID
	existing.Price = form.Price
	existing.IsFree = form.IsFree
	existing.URL = form.URL

	if err := s.eventRepo.Update(ctx, existing); err != nil {
		return nil, normalize(ctx, "updateEvent", err)
	}

	s.revalidate(ctx, path)

	updated, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, normalize(ctx, "updateEvent", err)
	}
	return updated, nil
}

// GetEventByID retrieves a single dereferenced event
func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, normalize(ctx, "getEventById", err)
	}
	if event == nil {
		return nil, normalize(ctx, "getEventById", domain.NotFound("Event not found"))
	}
	return event, nil
}

// GetEventsByUser lists events organized by a user at the profile page size
func (s *eventService) GetEventsByUser(ctx context.Context, userID string, page int) ([]*domain.Event, int, error) {
	if page <= 0 {
		page = 1
	}

	events, total, err := s.eventRepo.GetByOrganizer(ctx, userID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, 0, normalize(ctx, "getEventsByUser", err)
	}
	return events, response.TotalPages(int64(total), PageSize), nil
}

// GetAllEvents lists events matching the filter
func (s *eventService) GetAllEvents(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	filter.SetDefaults()

	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, normalize(ctx, "getAllEvents", err)
	}
	return events, response.TotalPages(int64(total), filter.Limit), nil
}

// GetRelatedEvents lists events sharing a category with the given event
func (s *eventService) GetRelatedEvents(ctx context.Context, eventID string, page int) ([]*domain.Event, int, error) {
	if page <= 0 {
		page = 1
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, 0, normalize(ctx, "getRelatedEvents", err)
	}
	if event == nil {
		return nil, 0, normalize(ctx, "getRelatedEvents", domain.NotFound("Event not found"))
	}

	events, total, err := s.eventRepo.GetRelatedByCategory(ctx, event.CategoryID, eventID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, 0, normalize(ctx, "getRelatedEvents", err)
	}
	return events, response.TotalPages(int64(total), PageSize), nil
}

// DeleteEvent removes an event on behalf of its organizer
func (s *eventService) DeleteEvent(ctx context.Context, eventID, organizerID, path string) error {
	existing, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return normalize(ctx, "deleteEvent", err)
	}
	if existing == nil {
		return normalize(ctx, "deleteEvent", domain.NotFound("Event not found"))
	}
	if existing.OrganizerID != organizerID {
		return normalize(ctx, "deleteEvent", domain.Forbidden("Unauthorized or event not found"))
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return normalize(ctx, "deleteEvent", err)
	}

	s.revalidate(ctx, path)
	return nil
}
