package teammember

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Get(ctx context.Context, id int) (*domain.TeamMember, error)
	Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error)
}
