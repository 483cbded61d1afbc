package service

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.Service
}

func NewMemory(seed []domain.Service) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.Service, len(seed))}
	for _, s := range seed {
		r.items[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Service, 0, len(r.items))
	for _, s := range r.items {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, s domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.items[s.ID] = s
	return &s, nil
}
