package recommend

import (
	"context"

	"fitness-backend/internal/exercises"
)

// ExerciseRef is the engine's view of a selected catalog entry.
type ExerciseRef struct {
	ExerciseID  string `json:"exerciseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog is the read-only slice of the exercise store the selector needs.
// *exercises.PGRepo and *exercises.MemoryRepo both satisfy it.
type Catalog interface {
	FindByLabel(ctx context.Context, label, difficulty string) ([]exercises.Exercise, error)
	RandomSample(ctx context.Context, n int) ([]exercises.Exercise, error)
}

const maxExercises = 8

// Selector resolves a concrete exercise set for a label and bucket: loose
// label matches first (in catalog order), then random backfill from the full
// catalog until 8 are reached or the catalog is exhausted.
type Selector struct {
	Catalog Catalog
}

// Select returns at most 8 exercises and never fewer than
// min(8, catalog size).
func (s *Selector) Select(ctx context.Context, label string, bucket Bucket) ([]ExerciseRef, error) {
	matched, err := s.Catalog.FindByLabel(ctx, label, string(bucket))
	if err != nil {
		return nil, err
	}
	if len(matched) > maxExercises {
		matched = matched[:maxExercises]
	}

	out := make([]ExerciseRef, 0, maxExercises)
	seen := make(map[string]bool, maxExercises)
	for _, e := range matched {
		out = append(out, toRef(e))
		seen[e.ID] = true
	}
	if len(out) >= maxExercises {
		return out, nil
	}

	// Draw a full sample so overlap with the matches cannot leave the result
	// short of min(8, catalog size).
	sample, err := s.Catalog.RandomSample(ctx, maxExercises)
	if err != nil {
		return nil, err
	}
	for _, e := range sample {
		if len(out) >= maxExercises {
			break
		}
		if seen[e.ID] {
			continue
		}
		out = append(out, toRef(e))
		seen[e.ID] = true
	}
	return out, nil
}

func toRef(e exercises.Exercise) ExerciseRef {
	description := e.Description
	if description == "" {
		description = "No description available."
	}
	return ExerciseRef{
		ExerciseID:  e.ID,
		Name:        e.Name,
		Description: description,
	}
}
