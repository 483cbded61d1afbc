package project

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.Project
}

func NewMemory(seed []domain.Project) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.Project, len(seed))}
	for _, p := range seed {
		r.items[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Create(_ context.Context, p domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = p
	return &p, nil
}
