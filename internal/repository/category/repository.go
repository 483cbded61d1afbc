package category

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
}
