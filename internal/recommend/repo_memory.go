package recommend

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores audit rows in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.Mutex
	items map[string]Recommendation
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: map[string]Recommendation{}}
}

// Create stores an audit row.
func (r *MemoryRepo) Create(ctx context.Context, rec Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.ID] = rec
	return nil
}

// GetByID returns one audit row owned by the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, recommendationID string) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[recommendationID]
	if !ok || rec.UserID != userID {
		return Recommendation{}, ErrNotFound
	}
	return rec, nil
}

// ListByUser returns the user's audit rows, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Recommendation{}
	for _, rec := range r.items {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpdateStatus moves a pending recommendation to accepted or rejected.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, userID, recommendationID string, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[recommendationID]
	if !ok || rec.UserID != userID {
		return ErrNotFound
	}
	if !ValidStatusTransition(rec.Status, status) {
		return ErrInvalidStatus
	}
	rec.Status = status
	r.items[recommendationID] = rec
	return nil
}
