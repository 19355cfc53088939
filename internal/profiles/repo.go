package profiles

import "context"

// Repo defines persistence for profile records. Health and goal are upserted
// per user; the remaining series are append-only with latest-wins reads.
type Repo interface {
	UpsertHealth(ctx context.Context, record HealthRecord) error
	GetHealth(ctx context.Context, userID string) (HealthRecord, error)

	UpsertGoal(ctx context.Context, record GoalRecord) error
	GetGoal(ctx context.Context, userID string) (GoalRecord, error)

	AddProgress(ctx context.Context, record ProgressRecord) error
	LatestProgress(ctx context.Context, userID string) (ProgressRecord, error)

	AddSleep(ctx context.Context, record SleepRecord) error
	LatestSleep(ctx context.Context, userID string) (SleepRecord, error)

	AddNutrition(ctx context.Context, record NutritionRecord) error
	LatestNutrition(ctx context.Context, userID string) (NutritionRecord, error)

	AddMeasurement(ctx context.Context, record MeasurementRecord) error
	LatestMeasurement(ctx context.Context, userID string) (MeasurementRecord, error)
}
