package exercises

import (
	"context"
	"math/rand"
	"testing"
)

func seedCatalog(t *testing.T, repo *MemoryRepo) {
	t.Helper()
	items := []Exercise{
		{ID: "ex-1", Name: "Goblet Squat", Category: "Strength Training", Difficulty: "Beginner", Active: true},
		{ID: "ex-2", Name: "Bench Press", Category: "Strength Training", Difficulty: "Intermediate", Active: true},
		{ID: "ex-3", Name: "Sun Salutation", Category: "Yoga", Difficulty: "Beginner", Active: true},
		{ID: "ex-4", Name: "Bird Dog", Description: "Rehabilitation drill for the lower back", Category: "Rehabilitation", Difficulty: "Beginner", Active: true},
		{ID: "ex-5", Name: "Retired Move", Category: "Strength Training", Difficulty: "Beginner", Active: false},
	}
	for _, e := range items {
		if err := repo.Create(context.Background(), e); err != nil {
			t.Fatalf("Create %s: %v", e.ID, err)
		}
	}
}

func TestMemoryRepoFindByLabelMatchesNameDescriptionCategory(t *testing.T) {
	repo := NewMemoryRepo()
	seedCatalog(t, repo)

	got, err := repo.FindByLabel(context.Background(), "strength", "beginner")
	if err != nil {
		t.Fatalf("FindByLabel: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ex-1" {
		t.Fatalf("expected only ex-1, got %+v", got)
	}

	got, err = repo.FindByLabel(context.Background(), "rehabilitation", "beginner")
	if err != nil {
		t.Fatalf("FindByLabel: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ex-4" {
		t.Fatalf("expected only ex-4, got %+v", got)
	}
}

func TestMemoryRepoFindByLabelSkipsInactive(t *testing.T) {
	repo := NewMemoryRepo()
	seedCatalog(t, repo)

	got, err := repo.FindByLabel(context.Background(), "Retired", "Beginner")
	if err != nil {
		t.Fatalf("FindByLabel: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("inactive exercises must not match, got %+v", got)
	}
}

func TestMemoryRepoRandomSampleIsReproducibleWithSeed(t *testing.T) {
	first := NewMemoryRepoWithRand(rand.New(rand.NewSource(42)))
	second := NewMemoryRepoWithRand(rand.New(rand.NewSource(42)))
	seedCatalog(t, first)
	seedCatalog(t, second)

	a, err := first.RandomSample(context.Background(), 3)
	if err != nil {
		t.Fatalf("RandomSample: %v", err)
	}
	b, err := second.RandomSample(context.Background(), 3)
	if err != nil {
		t.Fatalf("RandomSample: %v", err)
	}
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("expected 3 draws each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed must produce same sample: %q vs %q at %d", a[i].ID, b[i].ID, i)
		}
	}
}

func TestMemoryRepoRandomSampleCapsAtCatalogSize(t *testing.T) {
	repo := NewMemoryRepo()
	seedCatalog(t, repo)

	got, err := repo.RandomSample(context.Background(), 50)
	if err != nil {
		t.Fatalf("RandomSample: %v", err)
	}
	// 4 active entries in the seed catalog.
	if len(got) != 4 {
		t.Fatalf("expected sample capped at 4, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, e := range got {
		if seen[e.ID] {
			t.Fatalf("duplicate exercise %q in sample", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestMemoryRepoGetByNameIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryRepo()
	seedCatalog(t, repo)

	got, err := repo.GetByName(context.Background(), "bench press")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.ID != "ex-2" {
		t.Fatalf("expected ex-2, got %q", got.ID)
	}
}
