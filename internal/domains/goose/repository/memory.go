package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"goose-quotes/internal/domains/goose/model"
)

// memoryRepository keeps geese in process memory.
// Used with STORE_DRIVER=memory and by tests.
type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	geese  map[int64]model.Goose
}

// NewMemoryRepository creates an empty in-memory goose repository
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		geese: make(map[int64]model.Goose),
	}
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*model.Goose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.geese[id]
	if !ok {
		return nil, model.ErrGooseNotFound
	}
	return &g, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]model.Goose, error) {
	return r.filter(func(model.Goose) bool { return true }), nil
}

func (r *memoryRepository) FindBySubstring(ctx context.Context, field model.SearchField, pattern string) ([]model.Goose, error) {
	pattern = strings.ToLower(pattern)

	var value func(model.Goose) string
	switch field {
	case model.SearchByName:
		value = func(g model.Goose) string { return g.Name }
	case model.SearchByLanguage:
		value = func(g model.Goose) string {
			if g.ProgrammingLanguage == nil {
				return ""
			}
			return *g.ProgrammingLanguage
		}
	default:
		return nil, fmt.Errorf("unsupported search field: %s", field)
	}

	geese := r.filter(func(g model.Goose) bool {
		if field == model.SearchByLanguage && g.ProgrammingLanguage == nil {
			return false
		}
		return strings.Contains(strings.ToLower(value(g)), pattern)
	})
	if field == model.SearchByName {
		sort.SliceStable(geese, func(i, j int) bool {
			return strings.ToLower(geese[i].Name) < strings.ToLower(geese[j].Name)
		})
	}
	return geese, nil
}

func (r *memoryRepository) FindFlockLeaders(ctx context.Context) ([]model.Goose, error) {
	return r.filter(func(g model.Goose) bool { return g.IsFlockLeader }), nil
}

func (r *memoryRepository) Insert(ctx context.Context, g *model.Goose) (*model.Goose, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *g
	created.ID = r.nextID
	r.geese[created.ID] = created
	r.order = append(r.order, created.ID)
	return &created, nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, patch model.GoosePatch) (*model.Goose, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.geese[id]
	if !ok {
		return nil, model.ErrGooseNotFound
	}
	patch.Apply(&g)
	r.geese[id] = g
	return &g, nil
}

func (r *memoryRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *memoryRepository) filter(keep func(model.Goose) bool) []model.Goose {
	r.mu.RLock()
	defer r.mu.RUnlock()

	geese := make([]model.Goose, 0, len(r.order))
	for _, id := range r.order {
		if g := r.geese[id]; keep(g) {
			geese = append(geese, g)
		}
	}
	return geese
}
