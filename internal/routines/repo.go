package routines

import "context"

// Repo defines persistence for routines and their exercise slots.
type Repo interface {
	Create(ctx context.Context, routine Routine) error
	// GetOrCreateByName returns the user's routine with the given name, or
	// creates it (with its exercise slots) when absent. The second return
	// value is true when a new routine was created. Concurrent callers
	// racing on the same name all observe the same routine.
	GetOrCreateByName(ctx context.Context, routine Routine) (Routine, bool, error)
	GetByID(ctx context.Context, userID, routineID string) (Routine, error)
	ListByUser(ctx context.Context, userID string) ([]Routine, error)
	// ReplaceExercises swaps the routine's exercise slots for the given set.
	// Returns ErrNotFound when the routine does not exist or is owned by
	// another user.
	ReplaceExercises(ctx context.Context, userID, routineID string, exercises []RoutineExercise) error
}
