package exercises

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// MemoryRepo stores the catalog in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Exercise
	rng   *rand.Rand
}

// NewMemoryRepo constructs a MemoryRepo with time-seeded randomness.
func NewMemoryRepo() *MemoryRepo {
	return NewMemoryRepoWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMemoryRepoWithRand constructs a MemoryRepo with the given random source,
// so tests can make RandomSample reproducible.
func NewMemoryRepoWithRand(rng *rand.Rand) *MemoryRepo {
	return &MemoryRepo{rng: rng}
}

// Create appends an exercise in catalog order.
func (r *MemoryRepo) Create(ctx context.Context, exercise Exercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, exercise)
	return nil
}

// List returns all active exercises in catalog order.
func (r *MemoryRepo) List(ctx context.Context) ([]Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Exercise{}
	for _, e := range r.items {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetByID returns an exercise by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, exerciseID string) (Exercise, error) {
	if err := ctx.Err(); err != nil {
		return Exercise{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.items {
		if e.ID == exerciseID {
			return e, nil
		}
	}
	return Exercise{}, ErrNotFound
}

// GetByName returns an exercise by exact name, case-insensitive.
func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Exercise, error) {
	if err := ctx.Err(); err != nil {
		return Exercise{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.items {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Exercise{}, ErrNotFound
}

// FindByLabel performs the loose catalog match used by the selector.
func (r *MemoryRepo) FindByLabel(ctx context.Context, label, difficulty string) ([]Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Exercise{}
	for _, e := range r.items {
		if !e.Active {
			continue
		}
		if !containsFold(e.Difficulty, difficulty) {
			continue
		}
		if containsFold(e.Name, label) || containsFold(e.Description, label) || containsFold(e.Category, label) {
			out = append(out, e)
		}
	}
	return out, nil
}

// RandomSample draws up to n active exercises uniformly at random.
func (r *MemoryRepo) RandomSample(ctx context.Context, n int) ([]Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Exercise{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	active := []Exercise{}
	for _, e := range r.items {
		if e.Active {
			active = append(active, e)
		}
	}
	perm := r.rng.Perm(len(active))
	if n > len(active) {
		n = len(active)
	}
	out := make([]Exercise, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, active[idx])
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
