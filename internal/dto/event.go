package dto

import (
	"time"

	"github.com/BangKartavya/evently/internal/domain"
)

// EventForm carries the event form fields for create and update submissions.
// Multipart field names match the form inputs; the staged image file travels
// separately in the request body.
type EventForm struct {
	Title       string    `json:"title" form:"title" validate:"min=3"`
	Description string    `json:"description" form:"description" validate:"min=3,max=400"`
	Location    string    `json:"location" form:"location" validate:"min=3,max=400"`
	ImageURL    string    `json:"image_url" form:"image_url"`
	StartAt     time.Time `json:"start_at" form:"start_at" time_format:"2006-01-02T15:04:05Z07:00" validate:"required"`
	EndAt       time.Time `json:"end_at" form:"end_at" time_format:"2006-01-02T15:04:05Z07:00" validate:"required"`
	CategoryID  string    `json:"category_id" form:"category_id"`
	Price       string    `json:"price" form:"price"`
	IsFree      bool      `json:"is_free" form:"is_free"`
	URL         string    `json:"url" form:"url" validate:"url"`
}

// EventResponse is the serialized event record returned to clients
type EventResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	ImageURL    string            `json:"image_url"`
	StartAt     string            `json:"start_at"`
	EndAt       string            `json:"end_at"`
	CategoryID  string            `json:"category_id"`
	Price       string            `json:"price"`
	IsFree      bool              `json:"is_free"`
	URL         string            `json:"url"`
	OrganizerID string            `json:"organizer_id"`
	CreatedAt   string            `json:"created_at"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Organizer   *OrganizerInfo    `json:"organizer,omitempty"`
}

// CategoryResponse is the serialized category reference
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrganizerInfo is the dereferenced organizer on event reads
type OrganizerInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EventListFilter represents filters for listing events
type EventListFilter struct {
	Query    string `form:"query"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 6
	}
}

// Offset returns the skip count for the current page
func (f *EventListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ToEventResponse converts a domain event to its response DTO
func ToEventResponse(event *domain.Event) *EventResponse {
	resp := &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		StartAt:     event.StartAt.Format(time.RFC3339),
		EndAt:       event.EndAt.Format(time.RFC3339),
		CategoryID:  event.CategoryID,
		Price:       event.Price,
		IsFree:      event.IsFree,
		URL:         event.URL,
		OrganizerID: event.OrganizerID,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}

	if event.Category != nil {
		resp.Category = &CategoryResponse{
			ID:   event.Category.ID,
			Name: event.Category.Name,
		}
	}
	if event.Organizer != nil {
		resp.Organizer = &OrganizerInfo{
			ID:        event.Organizer.ID,
			FirstName: event.Organizer.FirstName,
			LastName:  event.Organizer.LastName,
		}
	}

	return resp
}
