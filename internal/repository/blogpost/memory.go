package blogpost

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.BlogPost
}

// NewMemory builds an in-memory repository preloaded with seed entries.
// The id counter continues from the highest seeded id.
func NewMemory(seed []domain.BlogPost) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.BlogPost, len(seed))}
	for _, p := range seed {
		r.items[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.BlogPost, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.items {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = p
	return &p, nil
}
