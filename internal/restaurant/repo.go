package restaurant

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("restaurant not found")
	ErrAlreadyExists = errors.New("restaurant already exists")
)

type Repository interface {
	Create(ctx context.Context, rst *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	GetByName(ctx context.Context, name string) (*Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)
	Revenue(ctx context.Context, id string) (string, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, rst *Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurants (id, name, location, created_at, updated_at)
		VALUES ($1,$2,$3,NOW(),NOW())
	`, rst.ID, rst.Name, rst.Location)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rst Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, name, location, created_at, updated_at
		FROM restaurants WHERE id=$1
	`, id).Scan(&rst.ID, &rst.Name, &rst.Location, &rst.CreatedAt, &rst.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &rst, nil
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (*Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rst Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, name, location, created_at, updated_at
		FROM restaurants WHERE name=$1
	`, name).Scan(&rst.ID, &rst.Name, &rst.Location, &rst.CreatedAt, &rst.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &rst, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, location, created_at, updated_at
		FROM restaurants ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		var rst Restaurant
		if err := rows.Scan(&rst.ID, &rst.Name, &rst.Location, &rst.CreatedAt, &rst.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rst)
	}
	return out, rows.Err()
}

// Revenue returns the summed total_price of the restaurant's orders as a
// decimal string ("0" when it has no orders yet).
func (r *PGRepo) Revenue(ctx context.Context, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total string
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_price), 0)::text
		FROM orders WHERE restaurant_id=$1
	`, id).Scan(&total)
	if err != nil {
		return "", err
	}
	return total, nil
}
