package category

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.Category
}

// NewMemory builds an in-memory repository preloaded with seed entries.
// The id counter continues from the highest seeded id.
func NewMemory(seed []domain.Category) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.Category, len(seed))}
	for _, c := range seed {
		r.items[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Category, 0, len(r.items))
	for _, c := range r.items {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.items[c.ID] = c
	return &c, nil
}
