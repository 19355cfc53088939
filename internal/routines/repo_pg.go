package routines

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const routineColumns = `id, user_id, name, description, difficulty, active, created_at`

// Create inserts a routine and its exercise slots in one transaction.
func (r *PGRepo) Create(ctx context.Context, routine Routine) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertRoutineTx(ctx, tx, routine); err != nil {
		return err
	}
	return tx.Commit()
}

// GetOrCreateByName returns the user's routine with the given name or creates it.
func (r *PGRepo) GetOrCreateByName(ctx context.Context, routine Routine) (Routine, bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Routine{}, false, err
	}
	defer tx.Rollback()

	// Serialize per (user, name) so concurrent recommendations reuse one routine.
	existing, err := getByNameTx(ctx, tx, routine.UserID, routine.Name)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return Routine{}, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, ErrNotFound) {
		return Routine{}, false, err
	}

	if err := insertRoutineTx(ctx, tx, routine); err != nil {
		// A racing transaction may have inserted the same name; fall back to it.
		if created, fetchErr := r.fetchAfterConflict(ctx, routine.UserID, routine.Name); fetchErr == nil {
			return created, false, nil
		}
		return Routine{}, false, err
	}
	if err := tx.Commit(); err != nil {
		return Routine{}, false, err
	}
	return routine, true, nil
}

// GetByID returns a routine owned by the user, with its exercise slots.
func (r *PGRepo) GetByID(ctx context.Context, userID, routineID string) (Routine, error) {
	const query = `
SELECT ` + routineColumns + `
FROM routines
WHERE id = $1 AND user_id = $2
LIMIT 1`
	routine, err := scanRoutine(r.DB.QueryRowContext(ctx, query, routineID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Routine{}, ErrNotFound
		}
		return Routine{}, err
	}
	exercises, err := r.listExercises(ctx, routine.ID)
	if err != nil {
		return Routine{}, err
	}
	routine.Exercises = exercises
	return routine, nil
}

// ListByUser returns the user's routines, newest first, without exercise slots.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Routine, error) {
	const query = `
SELECT ` + routineColumns + `
FROM routines
WHERE user_id = $1
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Routine{}
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, routine)
	}
	return out, rows.Err()
}

// ReplaceExercises swaps the routine's exercise slots in one transaction.
func (r *PGRepo) ReplaceExercises(ctx context.Context, userID, routineID string, exercises []RoutineExercise) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const lockRoutine = `
SELECT id
FROM routines
WHERE id = $1 AND user_id = $2
FOR UPDATE`
	var id string
	if err := tx.QueryRowContext(ctx, lockRoutine, routineID, userID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	const deleteSlots = `DELETE FROM routine_exercises WHERE routine_id = $1`
	if _, err := tx.ExecContext(ctx, deleteSlots, routineID); err != nil {
		return err
	}

	const insertSlot = `
INSERT INTO routine_exercises (routine_id, exercise_id, reps, position)
VALUES ($1, $2, $3, $4)`
	for _, re := range exercises {
		if _, err := tx.ExecContext(ctx, insertSlot, routineID, re.ExerciseID, re.Reps, re.Position); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PGRepo) fetchAfterConflict(ctx context.Context, userID, name string) (Routine, error) {
	const query = `
SELECT ` + routineColumns + `
FROM routines
WHERE user_id = $1 AND name = $2
LIMIT 1`
	routine, err := scanRoutine(r.DB.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Routine{}, ErrNotFound
		}
		return Routine{}, err
	}
	exercises, err := r.listExercises(ctx, routine.ID)
	if err != nil {
		return Routine{}, err
	}
	routine.Exercises = exercises
	return routine, nil
}

func (r *PGRepo) listExercises(ctx context.Context, routineID string) ([]RoutineExercise, error) {
	const query = `
SELECT re.exercise_id, COALESCE(e.name, ''), COALESCE(re.reps, 0), re.position
FROM routine_exercises re
LEFT JOIN exercises e ON e.id = re.exercise_id
WHERE re.routine_id = $1
ORDER BY re.position`
	rows, err := r.DB.QueryContext(ctx, query, routineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoutineExercise{}
	for rows.Next() {
		var re RoutineExercise
		if err := rows.Scan(&re.ExerciseID, &re.Name, &re.Reps, &re.Position); err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, rows.Err()
}

func getByNameTx(ctx context.Context, tx *sql.Tx, userID, name string) (Routine, error) {
	const query = `
SELECT ` + routineColumns + `
FROM routines
WHERE user_id = $1 AND name = $2
FOR UPDATE`
	routine, err := scanRoutine(tx.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Routine{}, ErrNotFound
		}
		return Routine{}, err
	}
	exercises, err := listExercisesTx(ctx, tx, routine.ID)
	if err != nil {
		return Routine{}, err
	}
	routine.Exercises = exercises
	return routine, nil
}

func listExercisesTx(ctx context.Context, tx *sql.Tx, routineID string) ([]RoutineExercise, error) {
	const query = `
SELECT re.exercise_id, COALESCE(e.name, ''), COALESCE(re.reps, 0), re.position
FROM routine_exercises re
LEFT JOIN exercises e ON e.id = re.exercise_id
WHERE re.routine_id = $1
ORDER BY re.position`
	rows, err := tx.QueryContext(ctx, query, routineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoutineExercise{}
	for rows.Next() {
		var re RoutineExercise
		if err := rows.Scan(&re.ExerciseID, &re.Name, &re.Reps, &re.Position); err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, rows.Err()
}

func insertRoutineTx(ctx context.Context, tx *sql.Tx, routine Routine) error {
	const insertRoutine = `
INSERT INTO routines (id, user_id, name, description, difficulty, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, insertRoutine,
		routine.ID,
		routine.UserID,
		routine.Name,
		nullableString(routine.Description),
		nullableString(routine.Difficulty),
		routine.Active,
		routine.CreatedAt,
	); err != nil {
		return err
	}

	const insertSlot = `
INSERT INTO routine_exercises (routine_id, exercise_id, reps, position)
VALUES ($1, $2, $3, $4)`
	for _, re := range routine.Exercises {
		if _, err := tx.ExecContext(ctx, insertSlot, routine.ID, re.ExerciseID, re.Reps, re.Position); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (Routine, error) {
	var r Routine
	var description sql.NullString
	var difficulty sql.NullString
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Name,
		&description,
		&difficulty,
		&r.Active,
		&r.CreatedAt,
	)
	if err != nil {
		return Routine{}, err
	}
	r.Description = description.String
	r.Difficulty = difficulty.String
	return r, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
