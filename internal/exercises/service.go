package exercises

import (
	"context"
	"errors"
	"io"

	"fitness-backend/internal/shared/storage/object"
)

// Service contains business logic for the exercise catalog.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// List returns the active catalog.
func (s *Service) List(ctx context.Context) ([]Exercise, error) {
	return s.Repo.List(ctx)
}

// Get returns a single exercise.
func (s *Service) Get(ctx context.Context, exerciseID string) (Exercise, error) {
	if exerciseID == "" {
		return Exercise{}, errors.New("exerciseID is required")
	}
	return s.Repo.GetByID(ctx, exerciseID)
}

// OpenMedia opens the demo media (GIF/video) stored for an exercise.
func (s *Service) OpenMedia(ctx context.Context, exerciseID string) (io.ReadCloser, error) {
	exercise, err := s.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.MediaKey == "" {
		return nil, ErrNotFound
	}
	if s.Store == nil {
		return nil, errors.New("object store not configured")
	}
	return s.Store.Open(ctx, exercise.MediaKey)
}
