package subscriber

import (
	"context"
	"errors"

	"godivatech-site/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Subscriber, error) {
	const q = `
SELECT id, email, created_at
FROM subscribers
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Subscriber, error) {
	const q = `
SELECT id, email, created_at
FROM subscribers
WHERE id = $1
`
	var s domain.Subscriber
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const q = `
SELECT id, email, created_at
FROM subscribers
WHERE email = $1
`
	var s domain.Subscriber
	err := r.pool.QueryRow(ctx, q, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Subscriber) (*domain.Subscriber, error) {
	const q = `
INSERT INTO subscribers (email)
VALUES ($1)
RETURNING id, created_at
`
	out := s
	err := r.pool.QueryRow(ctx, q, s.Email).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		// The unique index on email backstops the service-level duplicate check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailSubscribed
		}
		return nil, err
	}
	return &out, nil
}
