package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// eventColumns defines the columns to select for events, with category and
// organizer dereferenced
const eventColumns = `e.id, e.title, e.description, e.location, COALESCE(e.image_url, '') as image_url,
	e.start_at, e.end_at, e.category_id, COALESCE(e.price, '') as price, e.is_free,
	COALESCE(e.url, '') as url, e.organizer_id, e.created_at,
	c.id, c.name,
	u.id, COALESCE(u.first_name, '') as first_name, COALESCE(u.last_name, '') as last_name`

const eventJoins = ` FROM events e
	JOIN categories c ON c.id = e.category_id
	JOIN users u ON u.id = e.organizer_id`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// scanEvent scans a joined row into an Event with its references populated
func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{
		Category:  &domain.Category{},
		Organizer: &domain.User{},
	}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.ImageURL,
		&event.StartAt,
		&event.EndAt,
		&event.CategoryID,
		&event.Price,
		&event.IsFree,
		&event.URL,
		&event.OrganizerID,
		&event.CreatedAt,
		&event.Category.ID,
		&event.Category.Name,
		&event.Organizer.ID,
		&event.Organizer.FirstName,
		&event.Organizer.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// collectEvents drains rows into a slice of events
func collectEvents(rows pgx.Rows) ([]*domain.Event, error) {
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, image_url, start_at, end_at,
			category_id, price, is_free, url, organizer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.StartAt,
		event.EndAt,
		event.CategoryID,
		event.Price,
		event.IsFree,
		event.URL,
		event.OrganizerID,
		event.CreatedAt,
	)
	return err
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + eventJoins + ` WHERE e.id = $1`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

// Update rewrites the mutable fields of an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, image_url = $5, start_at = $6,
			end_at = $7, category_id = $8, price = $9, is_free = $10, url = $11
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.StartAt,
		event.EndAt,
		event.CategoryID,
		event.Price,
		event.IsFree,
		event.URL,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("event not found")
	}
	return nil
}

// Delete removes an event
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("event not found")
	}
	return nil
}

// GetByOrganizer retrieves events organized by a user with pagination
func (r *PostgresEventRepository) GetByOrganizer(ctx context.Context, organizerID string, limit, offset int) ([]*domain.Event, int, error) {
	countQuery := `SELECT COUNT(*) FROM events WHERE organizer_id = $1`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, organizerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + eventJoins + `
		WHERE e.organizer_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, organizerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// List retrieves events matching the filter with pagination. The category
// filter matches by display name, the query filter by title substring.
func (r *PostgresEventRepository) List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argn := 0

	if filter.Query != "" {
		argn++
		where += fmt.Sprintf(" AND e.title ILIKE $%d", argn)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Category != "" {
		argn++
		where += fmt.Sprintf(" AND c.name = $%d", argn)
		args = append(args, filter.Category)
	}

	countQuery := `SELECT COUNT(*)` + eventJoins + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + eventJoins + where +
		fmt.Sprintf(" ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// GetRelatedByCategory retrieves events sharing a category, excluding one event
func (r *PostgresEventRepository) GetRelatedByCategory(ctx context.Context, categoryID, excludeEventID string, limit, offset int) ([]*domain.Event, int, error) {
	countQuery := `SELECT COUNT(*) FROM events WHERE category_id = $1 AND id <> $2`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, categoryID, excludeEventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + eventJoins + `
		WHERE e.category_id = $1 AND e.id <> $2
		ORDER BY e.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, categoryID, excludeEventID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
