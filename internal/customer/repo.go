package customer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrAlreadyExists = errors.New("customer already exists")
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	TopByOrders(ctx context.Context, n int) ([]Customer, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone_number, address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, c.ID, c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return r.getBy(ctx, "email", email)
}

func (r *PGRepo) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	return r.getBy(ctx, "phone_number", phone)
}

func (r *PGRepo) getBy(ctx context.Context, column, value string) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone_number, address, created_at, updated_at
		FROM customers WHERE `+column+`=$1
	`, value).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone_number, address, created_at, updated_at
		FROM customers ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TopByOrders returns the n customers with the most orders, most active first.
func (r *PGRepo) TopByOrders(ctx context.Context, n int) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n <= 0 {
		n = 5
	}
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.email, c.phone_number, c.address, c.created_at, c.updated_at
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id
		ORDER BY COUNT(o.id) DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
