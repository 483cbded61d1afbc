package service

import (
	"context"

	"godivatech-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id int) (*domain.Service, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Service, error)
	Create(ctx context.Context, s domain.Service) (*domain.Service, error)
}
