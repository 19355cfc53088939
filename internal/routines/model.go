package routines

import "time"

// Routine is a named workout plan owned by a user. Routines created by the
// recommendation flow use the "AI Routine - <label>" naming convention and
// are unique per (user, name).
type Routine struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"createdAt"`
	Exercises   []RoutineExercise `json:"exercises,omitempty"`
}

// RoutineExercise is one ordered slot in a routine.
type RoutineExercise struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name,omitempty"`
	Reps       int    `json:"reps,omitempty"`
	Position   int    `json:"position"`
}
