package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	Create(ctx context.Context, m *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error)
	Update(ctx context.Context, m *Item) error
	TopItem(ctx context.Context) (*Item, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, m *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, price, is_available, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, m.ID, m.RestaurantID, m.Name, m.Price, m.IsAvailable)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m Item
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, price::text, is_available, created_at, updated_at
		FROM menu_items WHERE id=$1
	`, id).Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Price, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *PGRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, price::text, is_available, created_at, updated_at
		FROM menu_items WHERE restaurant_id=$1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var m Item
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Price, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, m *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET price = $2, is_available = $3, updated_at = NOW()
		WHERE id = $1
	`, m.ID, m.Price, m.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TopItem returns the menu item referenced by the most order items.
// ErrNotFound when no order items exist at all.
func (r *PGRepo) TopItem(ctx context.Context) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m Item
	err := r.db.QueryRow(ctx, `
		SELECT mi.id, mi.restaurant_id, mi.name, mi.price::text, mi.is_available, mi.created_at, mi.updated_at
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		GROUP BY mi.id
		ORDER BY COUNT(oi.id) DESC
		LIMIT 1
	`).Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Price, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}
