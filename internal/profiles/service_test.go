package profiles

import (
	"context"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestSnapshotReturnsNilForMissingSeries(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	snap, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Health != nil || snap.Goal != nil || snap.Progress != nil ||
		snap.Sleep != nil || snap.Nutrition != nil || snap.Measurement != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestSnapshotPicksLatestSeriesEntry(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	older := ProgressRecord{ID: "p-1", UserID: "user-1", WeightKg: floatPtr(82), RecordedAt: base}
	newer := ProgressRecord{ID: "p-2", UserID: "user-1", WeightKg: floatPtr(79), RecordedAt: base.Add(48 * time.Hour)}
	if err := repo.AddProgress(ctx, older); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}
	if err := repo.AddProgress(ctx, newer); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	snap, err := svc.Snapshot(ctx, "user-1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Progress == nil || snap.Progress.ID != "p-2" {
		t.Fatalf("expected latest progress p-2, got %+v", snap.Progress)
	}
}

func TestCompletenessListsMissingBasics(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	result, err := svc.Completeness(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Completeness: %v", err)
	}
	if result.Complete {
		t.Fatalf("empty profile must not be complete")
	}
	want := []string{"birthDate", "restingHeartRate", "heightCm", "weightKg", "goal"}
	if len(result.Missing) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), result.Missing)
	}
	for i, field := range want {
		if result.Missing[i] != field {
			t.Fatalf("missing[%d]: expected %q, got %q", i, field, result.Missing[i])
		}
	}
}

func TestCompletenessWithFullProfile(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()
	birth := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)

	if _, err := svc.SaveHealth(ctx, HealthRecord{UserID: "user-1", BirthDate: &birth, RestingHeartRate: intPtr(62)}); err != nil {
		t.Fatalf("SaveHealth: %v", err)
	}
	if _, err := svc.SaveGoal(ctx, GoalRecord{UserID: "user-1", Goal: "Build muscle"}); err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}
	if _, err := svc.AddProgress(ctx, ProgressRecord{UserID: "user-1", HeightCm: floatPtr(180), WeightKg: floatPtr(78)}); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	result, err := svc.Completeness(ctx, "user-1")
	if err != nil {
		t.Fatalf("Completeness: %v", err)
	}
	if !result.Complete {
		t.Fatalf("expected complete profile, missing %v", result.Missing)
	}
}

func TestSaveGoalRequiresGoal(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.SaveGoal(context.Background(), GoalRecord{UserID: "user-1"}); err == nil {
		t.Fatalf("expected error for empty goal")
	}
}
