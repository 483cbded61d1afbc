package testimonial

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Testimonial, error) {
	const q = `
SELECT id, name, position, company, content, COALESCE(image, '')
FROM testimonials
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Position, &t.Company, &t.Content, &t.Image); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Testimonial, error) {
	const q = `
SELECT id, name, position, company, content, COALESCE(image, '')
FROM testimonials
WHERE id = $1
`
	var t domain.Testimonial
	err := r.pool.QueryRow(ctx, q, id).Scan(&t.ID, &t.Name, &t.Position, &t.Company, &t.Content, &t.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Create(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	const q = `
INSERT INTO testimonials (name, position, company, content, image)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING id
`
	out := t
	err := r.pool.QueryRow(ctx, q, t.Name, t.Position, t.Company, t.Content, t.Image).Scan(&out.ID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
