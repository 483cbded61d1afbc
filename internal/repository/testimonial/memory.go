package testimonial

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.Testimonial
}

func NewMemory(seed []domain.Testimonial) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.Testimonial, len(seed))}
	for _, t := range seed {
		r.items[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Testimonial, 0, len(r.items))
	for _, t := range r.items {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *memoryRepo) Create(_ context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.items[t.ID] = t
	return &t, nil
}
