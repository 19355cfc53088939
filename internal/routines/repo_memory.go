package routines

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores routines in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.Mutex
	items map[string]Routine // keyed by routine ID
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: map[string]Routine{}}
}

// Create stores a routine.
func (r *MemoryRepo) Create(ctx context.Context, routine Routine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UserID == routine.UserID && existing.Name == routine.Name {
			return ErrNameTaken
		}
	}
	r.items[routine.ID] = cloneRoutine(routine)
	return nil
}

// GetOrCreateByName returns the user's routine with the given name or creates it.
func (r *MemoryRepo) GetOrCreateByName(ctx context.Context, routine Routine) (Routine, bool, error) {
	if err := ctx.Err(); err != nil {
		return Routine{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UserID == routine.UserID && existing.Name == routine.Name {
			return cloneRoutine(existing), false, nil
		}
	}
	r.items[routine.ID] = cloneRoutine(routine)
	return routine, true, nil
}

// GetByID returns a routine owned by the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, routineID string) (Routine, error) {
	if err := ctx.Err(); err != nil {
		return Routine{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	routine, ok := r.items[routineID]
	if !ok || routine.UserID != userID {
		return Routine{}, ErrNotFound
	}
	return cloneRoutine(routine), nil
}

// ListByUser returns the user's routines, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Routine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Routine{}
	for _, routine := range r.items {
		if routine.UserID == userID {
			out = append(out, cloneRoutine(routine))
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

// ReplaceExercises swaps the routine's exercise slots.
func (r *MemoryRepo) ReplaceExercises(ctx context.Context, userID, routineID string, exercises []RoutineExercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	routine, ok := r.items[routineID]
	if !ok || routine.UserID != userID {
		return ErrNotFound
	}
	routine.Exercises = append([]RoutineExercise(nil), exercises...)
	r.items[routineID] = routine
	return nil
}

func cloneRoutine(routine Routine) Routine {
	out := routine
	out.Exercises = append([]RoutineExercise(nil), routine.Exercises...)
	return out
}
