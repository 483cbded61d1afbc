package blogpost

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	// List returns every post ordered by publishedAt descending.
	List(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id int) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error)
}
