package teammember

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.TeamMember, error) {
	const q = `
SELECT id, name, position, bio, COALESCE(image, ''), COALESCE(linkedin, ''), COALESCE(twitter, '')
FROM team_members
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image, &m.LinkedIn, &m.Twitter); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.TeamMember, error) {
	const q = `
SELECT id, name, position, bio, COALESCE(image, ''), COALESCE(linkedin, ''), COALESCE(twitter, '')
FROM team_members
WHERE id = $1
`
	var m domain.TeamMember
	err := r.pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image, &m.LinkedIn, &m.Twitter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	const q = `
INSERT INTO team_members (name, position, bio, image, linkedin, twitter)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
RETURNING id
`
	out := m
	err := r.pool.QueryRow(ctx, q, m.Name, m.Position, m.Bio, m.Image, m.LinkedIn, m.Twitter).Scan(&out.ID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
