package routines

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for routines.
type Service struct {
	Repo Repo
}

// CreateInput is the payload for manual routine creation.
type CreateInput struct {
	Name        string
	Description string
	Difficulty  string
	Exercises   []RoutineExercise
}

// List returns the user's routines, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Routine, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one routine with its exercise slots.
func (s *Service) Get(ctx context.Context, userID, routineID string) (Routine, error) {
	if userID == "" || routineID == "" {
		return Routine{}, errors.New("userID and routineID are required")
	}
	return s.Repo.GetByID(ctx, userID, routineID)
}

// Create builds a routine from user input and stores it.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Routine, error) {
	if userID == "" {
		return Routine{}, errors.New("userID is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Routine{}, errors.New("name is required")
	}

	routine := Routine{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Difficulty:  strings.TrimSpace(input.Difficulty),
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		Exercises:   normalizePositions(input.Exercises),
	}
	if err := s.Repo.Create(ctx, routine); err != nil {
		return Routine{}, err
	}
	return routine, nil
}

// GetOrCreateByName returns the user's routine with the given name, creating
// it with the supplied exercise slots when absent. Existing routines keep
// their original slots.
func (s *Service) GetOrCreateByName(ctx context.Context, userID, name, description, difficulty string, exercises []RoutineExercise) (Routine, bool, error) {
	if userID == "" {
		return Routine{}, false, errors.New("userID is required")
	}
	if strings.TrimSpace(name) == "" {
		return Routine{}, false, errors.New("name is required")
	}

	candidate := Routine{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Difficulty:  difficulty,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		Exercises:   normalizePositions(exercises),
	}
	return s.Repo.GetOrCreateByName(ctx, candidate)
}

// ReplaceExercises swaps a routine's exercise slots on explicit request and
// returns the updated routine. Recommendation reuse never calls this: an
// existing routine keeps its slots unless the caller replaces them here.
func (s *Service) ReplaceExercises(ctx context.Context, userID, routineID string, exercises []RoutineExercise) (Routine, error) {
	if userID == "" || routineID == "" {
		return Routine{}, errors.New("userID and routineID are required")
	}
	if len(exercises) == 0 {
		return Routine{}, errors.New("at least one exercise is required")
	}
	if err := s.Repo.ReplaceExercises(ctx, userID, routineID, normalizePositions(exercises)); err != nil {
		return Routine{}, err
	}
	return s.Repo.GetByID(ctx, userID, routineID)
}

func normalizePositions(exercises []RoutineExercise) []RoutineExercise {
	out := make([]RoutineExercise, 0, len(exercises))
	for i, re := range exercises {
		re.Position = i + 1
		out = append(out, re)
	}
	return out
}
