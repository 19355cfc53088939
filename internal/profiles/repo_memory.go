package profiles

import (
	"context"
	"sync"
)

// MemoryRepo stores profile records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu           sync.RWMutex
	health       map[string]HealthRecord
	goals        map[string]GoalRecord
	progress     map[string][]ProgressRecord
	sleep        map[string][]SleepRecord
	nutrition    map[string][]NutritionRecord
	measurements map[string][]MeasurementRecord
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		health:       map[string]HealthRecord{},
		goals:        map[string]GoalRecord{},
		progress:     map[string][]ProgressRecord{},
		sleep:        map[string][]SleepRecord{},
		nutrition:    map[string][]NutritionRecord{},
		measurements: map[string][]MeasurementRecord{},
	}
}

func (r *MemoryRepo) UpsertHealth(ctx context.Context, record HealthRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.health[record.UserID] = record
	return nil
}

func (r *MemoryRepo) GetHealth(ctx context.Context, userID string) (HealthRecord, error) {
	if err := ctx.Err(); err != nil {
		return HealthRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.health[userID]
	if !ok {
		return HealthRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) UpsertGoal(ctx context.Context, record GoalRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[record.UserID] = record
	return nil
}

func (r *MemoryRepo) GetGoal(ctx context.Context, userID string) (GoalRecord, error) {
	if err := ctx.Err(); err != nil {
		return GoalRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.goals[userID]
	if !ok {
		return GoalRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) AddProgress(ctx context.Context, record ProgressRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[record.UserID] = append(r.progress[record.UserID], record)
	return nil
}

func (r *MemoryRepo) LatestProgress(ctx context.Context, userID string) (ProgressRecord, error) {
	if err := ctx.Err(); err != nil {
		return ProgressRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	series := r.progress[userID]
	best := -1
	for i := range series {
		if best < 0 || !series[i].RecordedAt.Before(series[best].RecordedAt) {
			best = i
		}
	}
	if best < 0 {
		return ProgressRecord{}, ErrNotFound
	}
	return series[best], nil
}

func (r *MemoryRepo) AddSleep(ctx context.Context, record SleepRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleep[record.UserID] = append(r.sleep[record.UserID], record)
	return nil
}

func (r *MemoryRepo) LatestSleep(ctx context.Context, userID string) (SleepRecord, error) {
	if err := ctx.Err(); err != nil {
		return SleepRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	series := r.sleep[userID]
	best := -1
	for i := range series {
		if best < 0 || !series[i].RecordedAt.Before(series[best].RecordedAt) {
			best = i
		}
	}
	if best < 0 {
		return SleepRecord{}, ErrNotFound
	}
	return series[best], nil
}

func (r *MemoryRepo) AddNutrition(ctx context.Context, record NutritionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nutrition[record.UserID] = append(r.nutrition[record.UserID], record)
	return nil
}

func (r *MemoryRepo) LatestNutrition(ctx context.Context, userID string) (NutritionRecord, error) {
	if err := ctx.Err(); err != nil {
		return NutritionRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	series := r.nutrition[userID]
	best := -1
	for i := range series {
		if best < 0 || !series[i].RecordedAt.Before(series[best].RecordedAt) {
			best = i
		}
	}
	if best < 0 {
		return NutritionRecord{}, ErrNotFound
	}
	return series[best], nil
}

func (r *MemoryRepo) AddMeasurement(ctx context.Context, record MeasurementRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.measurements[record.UserID] = append(r.measurements[record.UserID], record)
	return nil
}

func (r *MemoryRepo) LatestMeasurement(ctx context.Context, userID string) (MeasurementRecord, error) {
	if err := ctx.Err(); err != nil {
		return MeasurementRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	series := r.measurements[userID]
	best := -1
	for i := range series {
		if best < 0 || !series[i].RecordedAt.Before(series[best].RecordedAt) {
			best = i
		}
	}
	if best < 0 {
		return MeasurementRecord{}, ErrNotFound
	}
	return series[best], nil
}
