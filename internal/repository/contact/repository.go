package contact

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Get(ctx context.Context, id int) (*domain.ContactMessage, error)
	// Create assigns the id and the createdAt timestamp.
	Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
}
