package recommend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const recommendationColumns = `id, user_id, routine_id, primary_label, difficulty, confidence, top3, exercises, features, model_version, status, created_at`

// Create inserts an audit row.
func (r *PGRepo) Create(ctx context.Context, rec Recommendation) error {
	const query = `
INSERT INTO recommendations (
	id, user_id, routine_id, primary_label, difficulty, confidence,
	top3, exercises, features, model_version, status, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	top3, err := marshalJSONB(rec.Top3)
	if err != nil {
		return err
	}
	exs, err := marshalJSONB(rec.Exercises)
	if err != nil {
		return err
	}
	features, err := marshalJSONB(rec.Features)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		nullableString(rec.RoutineID),
		rec.PrimaryLabel,
		rec.Difficulty,
		rec.Confidence,
		top3,
		exs,
		features,
		nullableString(rec.ModelVersion),
		rec.Status,
		rec.CreatedAt,
	)
	return err
}

// GetByID returns one audit row owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, recommendationID string) (Recommendation, error) {
	const query = `
SELECT ` + recommendationColumns + `
FROM recommendations
WHERE id = $1 AND user_id = $2
LIMIT 1`
	rec, err := scanRecommendation(r.DB.QueryRowContext(ctx, query, recommendationID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recommendation{}, ErrNotFound
		}
		return Recommendation{}, err
	}
	return rec, nil
}

// ListByUser returns the user's audit rows, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Recommendation, error) {
	const query = `
SELECT ` + recommendationColumns + `
FROM recommendations
WHERE user_id = $1
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateStatus moves a pending recommendation to accepted or rejected.
func (r *PGRepo) UpdateStatus(ctx context.Context, userID, recommendationID string, status Status) error {
	const query = `
UPDATE recommendations
SET status = $1
WHERE id = $2 AND user_id = $3 AND status = 'pending'`
	res, err := r.DB.ExecContext(ctx, query, status, recommendationID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the row does not exist for this user or it already left
		// the pending state.
		if _, err := r.GetByID(ctx, userID, recommendationID); err != nil {
			return err
		}
		return ErrInvalidStatus
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row rowScanner) (Recommendation, error) {
	var rec Recommendation
	var routineID sql.NullString
	var modelVersion sql.NullString
	var top3, exs, features []byte
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&routineID,
		&rec.PrimaryLabel,
		&rec.Difficulty,
		&rec.Confidence,
		&top3,
		&exs,
		&features,
		&modelVersion,
		&rec.Status,
		&rec.CreatedAt,
	)
	if err != nil {
		return Recommendation{}, err
	}
	rec.RoutineID = routineID.String
	rec.ModelVersion = modelVersion.String
	if len(top3) > 0 {
		if err := json.Unmarshal(top3, &rec.Top3); err != nil {
			return Recommendation{}, err
		}
	}
	if len(exs) > 0 {
		if err := json.Unmarshal(exs, &rec.Exercises); err != nil {
			return Recommendation{}, err
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &rec.Features); err != nil {
			return Recommendation{}, err
		}
	}
	return rec, nil
}

func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
