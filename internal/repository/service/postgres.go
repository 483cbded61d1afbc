package service

import (
	"context"
	"errors"

	"godivatech-site/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Service, error) {
	const q = `
SELECT id, title, description, icon, slug
FROM services
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Slug); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Service, error) {
	const q = `
SELECT id, title, description, icon, slug
FROM services
WHERE id = $1
`
	return r.scanOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	const q = `
SELECT id, title, description, icon, slug
FROM services
WHERE slug = $1
`
	return r.scanOne(ctx, q, slug)
}

func (r *postgresRepo) scanOne(ctx context.Context, q string, arg interface{}) (*domain.Service, error) {
	var s domain.Service
	err := r.pool.QueryRow(ctx, q, arg).Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Service) (*domain.Service, error) {
	const q = `
INSERT INTO services (title, description, icon, slug)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	out := s
	if err := r.pool.QueryRow(ctx, q, s.Title, s.Description, s.Icon, s.Slug).Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}
