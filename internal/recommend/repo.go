package recommend

import "context"

// Repo defines persistence for recommendation audit rows.
type Repo interface {
	Create(ctx context.Context, rec Recommendation) error
	GetByID(ctx context.Context, userID, recommendationID string) (Recommendation, error)
	ListByUser(ctx context.Context, userID string) ([]Recommendation, error)
	UpdateStatus(ctx context.Context, userID, recommendationID string, status Status) error
}
