package exercises

import "context"

// Repo defines access to the exercise catalog.
type Repo interface {
	Create(ctx context.Context, exercise Exercise) error
	List(ctx context.Context) ([]Exercise, error)
	GetByID(ctx context.Context, exerciseID string) (Exercise, error)
	GetByName(ctx context.Context, name string) (Exercise, error)
	// FindByLabel returns active exercises whose name, description or
	// category contains the label and whose difficulty contains the bucket
	// text, both case-insensitive, in catalog order.
	FindByLabel(ctx context.Context, label, difficulty string) ([]Exercise, error)
	// RandomSample returns up to n active exercises drawn uniformly at
	// random from the whole catalog.
	RandomSample(ctx context.Context, n int) ([]Exercise, error)
}
