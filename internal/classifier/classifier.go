package classifier

import (
	"context"
	"errors"

	"fitness-backend/internal/features"
)

// Prediction is one labeled class with its probability in [0, 1].
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Client abstracts the routine classification model. Implementations must
// return predictions sorted by descending probability.
type Client interface {
	Predict(ctx context.Context, rec features.Record) ([]Prediction, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("classifier not implemented")

// PlaceholderClient is a stub implementation until model wiring is added.
type PlaceholderClient struct{}

// Predict returns ErrNotImplemented.
func (PlaceholderClient) Predict(ctx context.Context, rec features.Record) ([]Prediction, error) {
	_ = ctx
	_ = rec
	return nil, ErrNotImplemented
}
