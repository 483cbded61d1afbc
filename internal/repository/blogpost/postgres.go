package blogpost

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

const selectColumns = `
SELECT id, title, slug, excerpt, content, published, author_name,
       COALESCE(author_image, ''), COALESCE(cover_image, ''), published_at, category_id
`

func scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Published,
		&p.AuthorName, &p.AuthorImage, &p.CoverImage, &p.PublishedAt, &p.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	q := selectColumns + `
FROM blog_posts
ORDER BY published_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.BlogPost, error) {
	q := selectColumns + `
FROM blog_posts
WHERE id = $1
`
	return scanPost(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	q := selectColumns + `
FROM blog_posts
WHERE slug = $1
`
	return scanPost(r.pool.QueryRow(ctx, q, slug))
}

func (r *postgresRepo) Create(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
	const q = `
INSERT INTO blog_posts (title, slug, excerpt, content, published, author_name, author_image, cover_image, published_at, category_id)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
RETURNING id
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Title, p.Slug, p.Excerpt, p.Content, p.Published,
		p.AuthorName, p.AuthorImage, p.CoverImage, p.PublishedAt, p.CategoryID).Scan(&out.ID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
