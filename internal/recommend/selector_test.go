package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"fitness-backend/internal/exercises"
)

func seededCatalog(t *testing.T, total, rehabBeginner int) *exercises.MemoryRepo {
	t.Helper()
	repo := exercises.NewMemoryRepoWithRand(rand.New(rand.NewSource(7)))
	ctx := context.Background()
	for i := 0; i < rehabBeginner; i++ {
		e := exercises.Exercise{
			ID:         fmt.Sprintf("rehab-%d", i),
			Name:       fmt.Sprintf("Rehabilitation Drill %d", i),
			Category:   "Rehabilitation",
			Difficulty: "Beginner",
			Active:     true,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	for i := rehabBeginner; i < total; i++ {
		e := exercises.Exercise{
			ID:         fmt.Sprintf("other-%d", i),
			Name:       fmt.Sprintf("Sprint Interval %d", i),
			Category:   "Cardio",
			Difficulty: "Advanced",
			Active:     true,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	return repo
}

func TestSelectorCapsAtEight(t *testing.T) {
	sel := &Selector{Catalog: seededCatalog(t, 20, 12)}

	got, err := sel.Select(context.Background(), "Rehabilitation", BucketBeginner)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 exercises, got %d", len(got))
	}
	for _, ref := range got {
		if ref.Name == "" {
			t.Fatalf("exercise without name: %+v", ref)
		}
	}
}

func TestSelectorBackfillsToMinEightOrCatalogSize(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		matches int
		want    int
	}{
		{"enough matches", 20, 12, 8},
		{"few matches big catalog", 20, 2, 8},
		{"no matches", 20, 0, 8},
		{"small catalog", 5, 1, 5},
		{"empty catalog", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := &Selector{Catalog: seededCatalog(t, tc.total, tc.matches)}
			got, err := sel.Select(context.Background(), "Rehabilitation", BucketBeginner)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d exercises, got %d", tc.want, len(got))
			}
			seen := map[string]bool{}
			for _, ref := range got {
				if seen[ref.ExerciseID] {
					t.Fatalf("duplicate exercise %q", ref.ExerciseID)
				}
				seen[ref.ExerciseID] = true
			}
		})
	}
}

func TestSelectorMatchesComeFirstInCatalogOrder(t *testing.T) {
	sel := &Selector{Catalog: seededCatalog(t, 20, 3)}

	got, err := sel.Select(context.Background(), "Rehabilitation", BucketBeginner)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"rehab-0", "rehab-1", "rehab-2"}
	for i, id := range want {
		if got[i].ExerciseID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, got[i].ExerciseID)
		}
	}
}

func TestSelectorDefaultsMissingDescription(t *testing.T) {
	sel := &Selector{Catalog: seededCatalog(t, 1, 1)}

	got, err := sel.Select(context.Background(), "Rehabilitation", BucketBeginner)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(got))
	}
	if got[0].Description != "No description available." {
		t.Fatalf("expected default description, got %q", got[0].Description)
	}
}
