package domain

import "time"

// Event represents an event listing created by an organizer
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	CategoryID  string    `json:"category_id"`
	Price       string    `json:"price"` // decimal-as-string so the UI controls formatting
	IsFree      bool      `json:"is_free"`
	URL         string    `json:"url"`
	OrganizerID string    `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Dereferenced references, populated on reads
	Category  *Category `json:"category,omitempty"`
	Organizer *User     `json:"organizer,omitempty"`
}

// Category represents an event category. Immutable once referenced by an event.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
