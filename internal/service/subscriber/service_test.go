package subscriber

import (
	"context"
	"errors"
	"testing"

	"godivatech-site/internal/domain"
	subscriberrepo "godivatech-site/internal/repository/subscriber"
)

func TestSubscribe_CreatesSubscriber(t *testing.T) {
	svc := New(subscriberrepo.NewMemory())

	sub, err := svc.Subscribe(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if sub.Email != "reader@example.com" {
		t.Fatalf("unexpected email %q", sub.Email)
	}
	if sub.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}

func TestSubscribe_RejectsDuplicateEmail(t *testing.T) {
	repo := subscriberrepo.NewMemory()
	svc := New(repo)

	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); err != nil {
		t.Fatalf("first subscribe: %v", err)
	}

	_, err := svc.Subscribe(context.Background(), "reader@example.com")
	if !errors.Is(err, domain.ErrEmailSubscribed) {
		t.Fatalf("expected ErrEmailSubscribed, got %v", err)
	}

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("duplicate subscribe changed the list: %d entries", len(all))
	}
}

type failingRepo struct {
	subscriberrepo.Repository
	err error
}

func (r *failingRepo) GetByEmail(_ context.Context, _ string) (*domain.Subscriber, error) {
	return nil, r.err
}

func TestSubscribe_PropagatesLookupErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := New(&failingRepo{err: boom})

	_, err := svc.Subscribe(context.Background(), "reader@example.com")
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}
