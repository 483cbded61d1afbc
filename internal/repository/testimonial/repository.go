package testimonial

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	Get(ctx context.Context, id int) (*domain.Testimonial, error)
	Create(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error)
}
