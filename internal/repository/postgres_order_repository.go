package repository

import (
	"context"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// GetByBuyer retrieves orders purchased by a user with pagination, each
// joined to its event and the event's organizer
func (r *PostgresOrderRepository) GetByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*domain.Order, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE buyer_id = $1`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, buyerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT o.id, COALESCE(o.stripe_id, '') as stripe_id, o.event_id, o.buyer_id,
			COALESCE(o.total_amount, '') as total_amount, o.created_at,
			` + eventColumns + `
		FROM orders o
		JOIN events e ON e.id = o.event_id
		JOIN categories c ON c.id = e.category_id
		JOIN users u ON u.id = e.organizer_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, buyerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{
			Event: &domain.Event{
				Category:  &domain.Category{},
				Organizer: &domain.User{},
			},
		}
		event := order.Event
		err := rows.Scan(
			&order.ID,
			&order.StripeID,
			&order.EventID,
			&order.BuyerID,
			&order.TotalAmount,
			&order.CreatedAt,
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
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
