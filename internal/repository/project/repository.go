package project

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
}
