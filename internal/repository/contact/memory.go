package contact

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
	items  map[int]domain.ContactMessage
	now    func() time.Time
}

func NewMemory() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]domain.ContactMessage), now: time.Now}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.ContactMessage, 0, len(r.items))
	for _, m := range r.items {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *memoryRepo) Create(_ context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = r.now().UTC()
	r.items[m.ID] = m
	return &m, nil
}
