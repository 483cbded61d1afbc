package teammember

import (
	"context"
	"sort"
	"sync"

	"godivatech-site/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.TeamMember
}

func NewMemory(seed []domain.TeamMember) Repository {
	r := &memoryRepo{nextID: 1, items: make(map[int]domain.TeamMember, len(seed))}
	for _, m := range seed {
		r.items[m.ID] = m
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.TeamMember, 0, len(r.items))
	for _, m := range r.items {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *memoryRepo) Create(_ context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.items[m.ID] = m
	return &m, nil
}
