package routines

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func routineRows(items ...Routine) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "description", "difficulty", "active", "created_at",
	})
	for _, r := range items {
		rows.AddRow(r.ID, r.UserID, r.Name, r.Description, r.Difficulty, r.Active, r.CreatedAt)
	}
	return rows
}

func slotRows(slots ...RoutineExercise) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"exercise_id", "name", "reps", "position"})
	for _, s := range slots {
		rows.AddRow(s.ExerciseID, s.Name, s.Reps, s.Position)
	}
	return rows
}

func TestPGRepoGetOrCreateByNameReturnsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	existing := Routine{ID: "rt-1", UserID: "user-1", Name: "AI Routine - Yoga", Active: true, CreatedAt: now}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM routines").
		WithArgs("user-1", "AI Routine - Yoga").
		WillReturnRows(routineRows(existing))
	mock.ExpectQuery("SELECT (.+) FROM routine_exercises").
		WithArgs("rt-1").
		WillReturnRows(slotRows(RoutineExercise{ExerciseID: "ex-1", Name: "Sun Salutation", Position: 1}))
	mock.ExpectCommit()

	candidate := Routine{ID: "rt-new", UserID: "user-1", Name: "AI Routine - Yoga", Active: true, CreatedAt: now}
	got, created, err := repo.GetOrCreateByName(context.Background(), candidate)
	if err != nil {
		t.Fatalf("GetOrCreateByName: %v", err)
	}
	if created {
		t.Fatalf("expected reuse, got created")
	}
	if got.ID != "rt-1" {
		t.Fatalf("expected rt-1, got %q", got.ID)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].ExerciseID != "ex-1" {
		t.Fatalf("expected existing slots, got %+v", got.Exercises)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetOrCreateByNameCreatesWithSlots(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	candidate := Routine{
		ID:         "rt-new",
		UserID:     "user-1",
		Name:       "AI Routine - Strength Training",
		Difficulty: "Intermediate",
		Active:     true,
		CreatedAt:  now,
		Exercises: []RoutineExercise{
			{ExerciseID: "ex-1", Reps: 12, Position: 1},
			{ExerciseID: "ex-2", Reps: 10, Position: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM routines").
		WithArgs("user-1", "AI Routine - Strength Training").
		WillReturnRows(routineRows())
	mock.ExpectExec("INSERT INTO routines").
		WithArgs(candidate.ID, candidate.UserID, candidate.Name, nil, candidate.Difficulty, candidate.Active, candidate.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO routine_exercises").
		WithArgs("rt-new", "ex-1", 12, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO routine_exercises").
		WithArgs("rt-new", "ex-2", 10, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	got, created, err := repo.GetOrCreateByName(context.Background(), candidate)
	if err != nil {
		t.Fatalf("GetOrCreateByName: %v", err)
	}
	if !created {
		t.Fatalf("expected create")
	}
	if got.ID != "rt-new" {
		t.Fatalf("expected rt-new, got %q", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDLoadsSlotsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM routines").
		WithArgs("rt-1", "user-1").
		WillReturnRows(routineRows(Routine{ID: "rt-1", UserID: "user-1", Name: "Leg Day", Active: true, CreatedAt: now}))
	mock.ExpectQuery("SELECT (.+) FROM routine_exercises").
		WithArgs("rt-1").
		WillReturnRows(slotRows(
			RoutineExercise{ExerciseID: "ex-1", Name: "Squat", Reps: 12, Position: 1},
			RoutineExercise{ExerciseID: "ex-2", Name: "Lunge", Reps: 10, Position: 2},
		))

	got, err := repo.GetByID(context.Background(), "user-1", "rt-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Exercises) != 2 || got.Exercises[0].Position != 1 || got.Exercises[1].Position != 2 {
		t.Fatalf("unexpected slots: %+v", got.Exercises)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoReplaceExercisesDeletesThenInserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM routines").
		WithArgs("rt-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("rt-1"))
	mock.ExpectExec("DELETE FROM routine_exercises").
		WithArgs("rt-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO routine_exercises").
		WithArgs("rt-1", "ex-9", 15, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	slots := []RoutineExercise{{ExerciseID: "ex-9", Reps: 15, Position: 1}}
	if err := repo.ReplaceExercises(context.Background(), "user-1", "rt-1", slots); err != nil {
		t.Fatalf("ReplaceExercises: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoReplaceExercisesNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM routines").
		WithArgs("rt-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	slots := []RoutineExercise{{ExerciseID: "ex-1", Position: 1}}
	if err := repo.ReplaceExercises(context.Background(), "user-2", "rt-1", slots); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM routines").
		WithArgs("missing", "user-1").
		WillReturnRows(routineRows())

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
