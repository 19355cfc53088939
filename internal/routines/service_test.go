package routines

import (
	"context"
	"testing"
)

func TestServiceReplaceExercisesNormalizesPositions(t *testing.T) {
	ctx := context.Background()
	svc := &Service{Repo: NewMemoryRepo()}

	created, err := svc.Create(ctx, "user-1", CreateInput{
		Name:      "Leg Day",
		Exercises: []RoutineExercise{{ExerciseID: "ex-1", Reps: 12}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.ReplaceExercises(ctx, "user-1", created.ID, []RoutineExercise{
		{ExerciseID: "ex-5", Reps: 15, Position: 99},
		{ExerciseID: "ex-6", Reps: 10, Position: 99},
	})
	if err != nil {
		t.Fatalf("ReplaceExercises: %v", err)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(got.Exercises))
	}
	if got.Exercises[0].Position != 1 || got.Exercises[1].Position != 2 {
		t.Fatalf("expected renumbered positions, got %+v", got.Exercises)
	}
	if got.Exercises[0].ExerciseID != "ex-5" || got.Exercises[1].ExerciseID != "ex-6" {
		t.Fatalf("expected replaced slots, got %+v", got.Exercises)
	}
}

func TestServiceReplaceExercisesValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.ReplaceExercises(ctx, "", "rt-1", []RoutineExercise{{ExerciseID: "ex-1"}}); err == nil {
		t.Fatalf("expected error for missing user")
	}
	if _, err := svc.ReplaceExercises(ctx, "user-1", "rt-1", nil); err == nil {
		t.Fatalf("expected error for empty exercise set")
	}
}
