package exercises

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const exerciseColumns = `id, name, description, category, muscle, difficulty, media_key, active, created_at`

// Create inserts a catalog entry.
func (r *PGRepo) Create(ctx context.Context, exercise Exercise) error {
	const query = `
INSERT INTO exercises (id, name, description, category, muscle, difficulty, media_key, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		exercise.ID,
		exercise.Name,
		nullableString(exercise.Description),
		nullableString(exercise.Category),
		nullableString(exercise.Muscle),
		nullableString(exercise.Difficulty),
		nullableString(exercise.MediaKey),
		exercise.Active,
		exercise.CreatedAt,
	)
	return err
}

// List returns all active exercises in catalog order.
func (r *PGRepo) List(ctx context.Context) ([]Exercise, error) {
	const query = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE active
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExercises(rows)
}

// GetByID returns a catalog entry by ID.
func (r *PGRepo) GetByID(ctx context.Context, exerciseID string) (Exercise, error) {
	const query = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE id = $1
LIMIT 1`
	return r.getOne(ctx, query, exerciseID)
}

// GetByName returns a catalog entry by exact name, case-insensitive.
func (r *PGRepo) GetByName(ctx context.Context, name string) (Exercise, error) {
	const query = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE lower(name) = lower($1)
LIMIT 1`
	return r.getOne(ctx, query, name)
}

// FindByLabel performs the loose catalog match used by the selector.
func (r *PGRepo) FindByLabel(ctx context.Context, label, difficulty string) ([]Exercise, error) {
	const query = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE active
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
  AND difficulty ILIKE '%' || $2 || '%'
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, label, difficulty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExercises(rows)
}

// RandomSample draws n exercises uniformly at random from the catalog.
func (r *PGRepo) RandomSample(ctx context.Context, n int) ([]Exercise, error) {
	if n <= 0 {
		return []Exercise{}, nil
	}
	const query = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE active
ORDER BY random()
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExercises(rows)
}

func (r *PGRepo) getOne(ctx context.Context, query string, arg any) (Exercise, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	exercise, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exercise{}, ErrNotFound
		}
		return Exercise{}, err
	}
	return exercise, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (Exercise, error) {
	var e Exercise
	var description sql.NullString
	var category sql.NullString
	var muscle sql.NullString
	var difficulty sql.NullString
	var mediaKey sql.NullString
	err := row.Scan(
		&e.ID,
		&e.Name,
		&description,
		&category,
		&muscle,
		&difficulty,
		&mediaKey,
		&e.Active,
		&e.CreatedAt,
	)
	if err != nil {
		return Exercise{}, err
	}
	e.Description = description.String
	e.Category = category.String
	e.Muscle = muscle.String
	e.Difficulty = difficulty.String
	e.MediaKey = mediaKey.String
	return e, nil
}

func scanExercises(rows *sql.Rows) ([]Exercise, error) {
	out := []Exercise{}
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, exercise)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
