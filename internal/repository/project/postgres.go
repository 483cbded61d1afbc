package project

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, title, description, COALESCE(image, ''), category, technologies, COALESCE(link, '')
FROM projects
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Category, &p.Technologies, &p.Link); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Project, error) {
	const q = `
SELECT id, title, description, COALESCE(image, ''), category, technologies, COALESCE(link, '')
FROM projects
WHERE id = $1
`
	var p domain.Project
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Category, &p.Technologies, &p.Link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	const q = `
INSERT INTO projects (title, description, image, category, technologies, link)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
RETURNING id
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Title, p.Description, p.Image, p.Category, p.Technologies, p.Link).Scan(&out.ID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
