package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// UpsertHealth writes the user's medical baseline, replacing any previous row.
func (r *PGRepo) UpsertHealth(ctx context.Context, record HealthRecord) error {
	const query = `
INSERT INTO health_records (user_id, birth_date, resting_heart_rate, preexisting_conditions, current_injuries, smokes, drinks, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
	birth_date = EXCLUDED.birth_date,
	resting_heart_rate = EXCLUDED.resting_heart_rate,
	preexisting_conditions = EXCLUDED.preexisting_conditions,
	current_injuries = EXCLUDED.current_injuries,
	smokes = EXCLUDED.smokes,
	drinks = EXCLUDED.drinks,
	updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query,
		record.UserID,
		record.BirthDate,
		record.RestingHeartRate,
		nullableString(record.PreexistingConditions),
		nullableString(record.CurrentInjuries),
		record.Smokes,
		record.Drinks,
		record.UpdatedAt,
	)
	return err
}

// GetHealth returns the user's medical baseline.
func (r *PGRepo) GetHealth(ctx context.Context, userID string) (HealthRecord, error) {
	const query = `
SELECT user_id, birth_date, resting_heart_rate, preexisting_conditions, current_injuries, smokes, drinks, updated_at
FROM health_records
WHERE user_id = $1`
	var rec HealthRecord
	var conditions, injuries sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.UserID,
		&rec.BirthDate,
		&rec.RestingHeartRate,
		&conditions,
		&injuries,
		&rec.Smokes,
		&rec.Drinks,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HealthRecord{}, ErrNotFound
		}
		return HealthRecord{}, err
	}
	rec.PreexistingConditions = conditions.String
	rec.CurrentInjuries = injuries.String
	return rec, nil
}

// UpsertGoal writes the user's training goal, replacing any previous row.
func (r *PGRepo) UpsertGoal(ctx context.Context, record GoalRecord) error {
	const query = `
INSERT INTO goal_records (user_id, goal, experience_level, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
	goal = EXCLUDED.goal,
	experience_level = EXCLUDED.experience_level,
	updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query,
		record.UserID,
		record.Goal,
		nullableString(record.ExperienceLevel),
		record.UpdatedAt,
	)
	return err
}

// GetGoal returns the user's training goal.
func (r *PGRepo) GetGoal(ctx context.Context, userID string) (GoalRecord, error) {
	const query = `
SELECT user_id, goal, experience_level, updated_at
FROM goal_records
WHERE user_id = $1`
	var rec GoalRecord
	var level sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.UserID, &rec.Goal, &level, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GoalRecord{}, ErrNotFound
		}
		return GoalRecord{}, err
	}
	rec.ExperienceLevel = level.String
	return rec, nil
}

// AddProgress appends a body measurement entry.
func (r *PGRepo) AddProgress(ctx context.Context, record ProgressRecord) error {
	const query = `
INSERT INTO progress_records (id, user_id, height_cm, weight_kg, recorded_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, record.ID, record.UserID, record.HeightCm, record.WeightKg, record.RecordedAt)
	return err
}

// LatestProgress returns the user's most recent body measurement.
func (r *PGRepo) LatestProgress(ctx context.Context, userID string) (ProgressRecord, error) {
	const query = `
SELECT id, user_id, height_cm, weight_kg, recorded_at
FROM progress_records
WHERE user_id = $1
ORDER BY recorded_at DESC, id DESC
LIMIT 1`
	var rec ProgressRecord
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.ID, &rec.UserID, &rec.HeightCm, &rec.WeightKg, &rec.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProgressRecord{}, ErrNotFound
		}
		return ProgressRecord{}, err
	}
	return rec, nil
}

// AddSleep appends a sleep survey entry.
func (r *PGRepo) AddSleep(ctx context.Context, record SleepRecord) error {
	const query = `
INSERT INTO sleep_records (id, user_id, hours, quality, night_wakeups, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		nullableString(record.Hours),
		nullableString(record.Quality),
		nullableString(record.NightWakeups),
		record.RecordedAt,
	)
	return err
}

// LatestSleep returns the user's most recent sleep survey entry.
func (r *PGRepo) LatestSleep(ctx context.Context, userID string) (SleepRecord, error) {
	const query = `
SELECT id, user_id, hours, quality, night_wakeups, recorded_at
FROM sleep_records
WHERE user_id = $1
ORDER BY recorded_at DESC, id DESC
LIMIT 1`
	var rec SleepRecord
	var hours, quality, wakeups sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.ID, &rec.UserID, &hours, &quality, &wakeups, &rec.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SleepRecord{}, ErrNotFound
		}
		return SleepRecord{}, err
	}
	rec.Hours = hours.String
	rec.Quality = quality.String
	rec.NightWakeups = wakeups.String
	return rec, nil
}

// AddNutrition appends a nutrition survey entry.
func (r *PGRepo) AddNutrition(ctx context.Context, record NutritionRecord) error {
	const query = `
INSERT INTO nutrition_records (id, user_id, main_meal_type, daily_calories, protein_grams, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		nullableString(record.MainMealType),
		record.DailyCalories,
		record.ProteinGrams,
		record.RecordedAt,
	)
	return err
}

// LatestNutrition returns the user's most recent nutrition survey entry.
func (r *PGRepo) LatestNutrition(ctx context.Context, userID string) (NutritionRecord, error) {
	const query = `
SELECT id, user_id, main_meal_type, daily_calories, protein_grams, recorded_at
FROM nutrition_records
WHERE user_id = $1
ORDER BY recorded_at DESC, id DESC
LIMIT 1`
	var rec NutritionRecord
	var mealType sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.ID, &rec.UserID, &mealType, &rec.DailyCalories, &rec.ProteinGrams, &rec.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NutritionRecord{}, ErrNotFound
		}
		return NutritionRecord{}, err
	}
	rec.MainMealType = mealType.String
	return rec, nil
}

// AddMeasurement appends a body composition entry.
func (r *PGRepo) AddMeasurement(ctx context.Context, record MeasurementRecord) error {
	const query = `
INSERT INTO measurement_records (id, user_id, body_fat_pct, muscle_mass_pct, waist_cm, hip_cm, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.BodyFatPct,
		record.MuscleMassPct,
		record.WaistCm,
		record.HipCm,
		record.RecordedAt,
	)
	return err
}

// LatestMeasurement returns the user's most recent body composition entry.
func (r *PGRepo) LatestMeasurement(ctx context.Context, userID string) (MeasurementRecord, error) {
	const query = `
SELECT id, user_id, body_fat_pct, muscle_mass_pct, waist_cm, hip_cm, recorded_at
FROM measurement_records
WHERE user_id = $1
ORDER BY recorded_at DESC, id DESC
LIMIT 1`
	var rec MeasurementRecord
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.ID, &rec.UserID, &rec.BodyFatPct, &rec.MuscleMassPct, &rec.WaistCm, &rec.HipCm, &rec.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MeasurementRecord{}, ErrNotFound
		}
		return MeasurementRecord{}, err
	}
	return rec, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
