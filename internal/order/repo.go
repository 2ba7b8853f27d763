package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetItems(ctx context.Context, orderID string) ([]ItemDetail, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create writes the order and all of its items in one transaction, so a
// failure anywhere leaves no partial rows behind.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, restaurant_id, status, total_price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, o.ID, o.CustomerID, o.RestaurantID, o.Status, o.TotalPrice); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)
		`, it.ID, o.ID, it.MenuItemID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, restaurant_id, status, total_price::text, created_at, updated_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *PGRepo) GetItems(ctx context.Context, orderID string) ([]ItemDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price::text,
		       mi.id, mi.restaurant_id, mi.name, mi.price::text, mi.is_available, mi.created_at, mi.updated_at
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ItemDetail
	for rows.Next() {
		var d ItemDetail
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.MenuItemID, &d.Quantity, &d.Item.Price,
			&d.MenuItem.ID, &d.MenuItem.RestaurantID, &d.MenuItem.Name, &d.MenuItem.Price,
			&d.MenuItem.IsAvailable, &d.MenuItem.CreatedAt, &d.MenuItem.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, restaurant_id, status, total_price::text, created_at, updated_at
		FROM orders WHERE customer_id=$1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
