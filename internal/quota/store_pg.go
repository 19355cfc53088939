package quota

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed quota store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Quota, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) EnsurePeriod(ctx context.Context, userID string) (Quota, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int) (Quota, error) {
	if n <= 0 {
		return s.ensure(ctx, userID)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Quota{}, err
	}

	if q.Used+n > q.Limit {
		err = ErrLimitReached
		return Quota{}, err
	}
	q.Used += n
	if _, err = tx.ExecContext(ctx, `
UPDATE quota SET used = $1 WHERE user_id = $2`, q.Used, userID); err != nil {
		return Quota{}, err
	}
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return q, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string) (Quota, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	now := time.Now().UTC()
	resetsAt := now.Add(period)
	if _, err = tx.ExecContext(ctx, `
INSERT INTO quota (user_id, plan, limit_amount, used, resets_at)
VALUES ($1, 'Free', 20, 0, $2)
ON CONFLICT (user_id) DO UPDATE SET used = 0, resets_at = EXCLUDED.resets_at`, userID, resetsAt); err != nil {
		return Quota{}, err
	}
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return Quota{Plan: "Free", Limit: 20, Used: 0, ResetsAt: resetsAt}, nil
}

func (s *pgStore) ensure(ctx context.Context, userID string) (Quota, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	q, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Quota{}, err
	}
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return q, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID string) (Quota, error) {
	var q Quota
	row := tx.QueryRowContext(ctx, `
SELECT plan, limit_amount, used, resets_at FROM quota WHERE user_id = $1 FOR UPDATE`, userID)
	err := row.Scan(&q.Plan, &q.Limit, &q.Used, &q.ResetsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			q = defaultQuota()
			q.ResetsAt = time.Now().UTC().Add(period)
			if _, err = tx.ExecContext(ctx, `
INSERT INTO quota (user_id, plan, limit_amount, used, resets_at) VALUES ($1, $2, $3, $4, $5)`,
				userID, q.Plan, q.Limit, q.Used, q.ResetsAt); err != nil {
				return Quota{}, err
			}
			return q, nil
		}
		return Quota{}, err
	}

	now := time.Now().UTC()
	if now.After(q.ResetsAt) || now.Equal(q.ResetsAt) {
		q.Used = 0
		q.ResetsAt = now.Add(period)
		if _, err = tx.ExecContext(ctx, `UPDATE quota SET used = $1, resets_at = $2 WHERE user_id = $3`, q.Used, q.ResetsAt, userID); err != nil {
			return Quota{}, err
		}
	}
	return q, nil
}
