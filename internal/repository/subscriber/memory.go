package subscriber

import (
	"context"
	"sort"
	"sync"
	"time"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.Subscriber
	now    func() time.Time
}

func NewMemory() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]domain.Subscriber), now: time.Now}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Subscriber, 0, len(r.items))
	for _, s := range r.items {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, s domain.Subscriber) (*domain.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = r.now().UTC()
	r.items[s.ID] = s
	return &s, nil
}
