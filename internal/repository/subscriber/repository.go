package subscriber

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Subscriber, error)
	Get(ctx context.Context, id int) (*domain.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	// Create assigns the id and the createdAt timestamp.
	Create(ctx context.Context, s domain.Subscriber) (*domain.Subscriber, error)
}
