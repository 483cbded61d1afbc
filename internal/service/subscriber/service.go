package subscriber

import (
	"context"
	"errors"

	"godivatech-site/internal/domain"
	subscriberrepo "godivatech-site/internal/repository/subscriber"
)

type Service struct {
	repo subscriberrepo.Repository
}

func New(repo subscriberrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe creates a subscriber unless the email is already on the list.
// The duplicate check happens before the create call reaches the store.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailSubscribed
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Subscriber{Email: email})
}
