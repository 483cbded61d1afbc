package contact

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	const q = `
SELECT id, name, email, COALESCE(phone, ''), subject, message, created_at
FROM contact_messages
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.ContactMessage, error) {
	const q = `
SELECT id, name, email, COALESCE(phone, ''), subject, message, created_at
FROM contact_messages
WHERE id = $1
`
	var m domain.ContactMessage
	err := r.pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	const q = `
INSERT INTO contact_messages (name, email, phone, subject, message)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING id, created_at
`
	out := m
	err := r.pool.QueryRow(ctx, q, m.Name, m.Email, m.Phone, m.Subject, m.Message).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
