package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for profile records.
type Service struct {
	Repo Repo
}

// Snapshot returns the latest record of every profile series for the user.
// Missing series come back nil; they are not an error.
func (s *Service) Snapshot(ctx context.Context, userID string) (Snapshot, error) {
	if userID == "" {
		return Snapshot{}, errors.New("userID is required")
	}

	var snap Snapshot

	if health, err := s.Repo.GetHealth(ctx, userID); err == nil {
		snap.Health = &health
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if goal, err := s.Repo.GetGoal(ctx, userID); err == nil {
		snap.Goal = &goal
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if progress, err := s.Repo.LatestProgress(ctx, userID); err == nil {
		snap.Progress = &progress
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if sleep, err := s.Repo.LatestSleep(ctx, userID); err == nil {
		snap.Sleep = &sleep
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if nutrition, err := s.Repo.LatestNutrition(ctx, userID); err == nil {
		snap.Nutrition = &nutrition
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if measurement, err := s.Repo.LatestMeasurement(ctx, userID); err == nil {
		snap.Measurement = &measurement
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}

	return snap, nil
}

// Completeness reports which basics are missing before a recommendation is
// fully personalized rather than defaulted.
func (s *Service) Completeness(ctx context.Context, userID string) (Completeness, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return Completeness{}, err
	}

	missing := []string{}
	if snap.Health == nil || snap.Health.BirthDate == nil {
		missing = append(missing, "birthDate")
	}
	if snap.Health == nil || snap.Health.RestingHeartRate == nil {
		missing = append(missing, "restingHeartRate")
	}
	if snap.Progress == nil || snap.Progress.HeightCm == nil {
		missing = append(missing, "heightCm")
	}
	if snap.Progress == nil || snap.Progress.WeightKg == nil {
		missing = append(missing, "weightKg")
	}
	if snap.Goal == nil || snap.Goal.Goal == "" {
		missing = append(missing, "goal")
	}

	return Completeness{Complete: len(missing) == 0, Missing: missing}, nil
}

// SaveHealth upserts the user's medical baseline.
func (s *Service) SaveHealth(ctx context.Context, record HealthRecord) (HealthRecord, error) {
	if record.UserID == "" {
		return HealthRecord{}, errors.New("userID is required")
	}
	record.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpsertHealth(ctx, record); err != nil {
		return HealthRecord{}, err
	}
	return record, nil
}

// SaveGoal upserts the user's training goal.
func (s *Service) SaveGoal(ctx context.Context, record GoalRecord) (GoalRecord, error) {
	if record.UserID == "" {
		return GoalRecord{}, errors.New("userID is required")
	}
	if record.Goal == "" {
		return GoalRecord{}, errors.New("goal is required")
	}
	record.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpsertGoal(ctx, record); err != nil {
		return GoalRecord{}, err
	}
	return record, nil
}

// AddProgress appends a body measurement entry.
func (s *Service) AddProgress(ctx context.Context, record ProgressRecord) (ProgressRecord, error) {
	if record.UserID == "" {
		return ProgressRecord{}, errors.New("userID is required")
	}
	record.ID = uuid.NewString()
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	if err := s.Repo.AddProgress(ctx, record); err != nil {
		return ProgressRecord{}, err
	}
	return record, nil
}

// AddSleep appends a sleep survey entry.
func (s *Service) AddSleep(ctx context.Context, record SleepRecord) (SleepRecord, error) {
	if record.UserID == "" {
		return SleepRecord{}, errors.New("userID is required")
	}
	record.ID = uuid.NewString()
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	if err := s.Repo.AddSleep(ctx, record); err != nil {
		return SleepRecord{}, err
	}
	return record, nil
}

// AddNutrition appends a nutrition survey entry.
func (s *Service) AddNutrition(ctx context.Context, record NutritionRecord) (NutritionRecord, error) {
	if record.UserID == "" {
		return NutritionRecord{}, errors.New("userID is required")
	}
	record.ID = uuid.NewString()
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	if err := s.Repo.AddNutrition(ctx, record); err != nil {
		return NutritionRecord{}, err
	}
	return record, nil
}

// AddMeasurement appends a body composition entry.
func (s *Service) AddMeasurement(ctx context.Context, record MeasurementRecord) (MeasurementRecord, error) {
	if record.UserID == "" {
		return MeasurementRecord{}, errors.New("userID is required")
	}
	record.ID = uuid.NewString()
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	if err := s.Repo.AddMeasurement(ctx, record); err != nil {
		return MeasurementRecord{}, err
	}
	return record, nil
}
