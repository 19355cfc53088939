package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitness-backend/internal/classifier"
	"fitness-backend/internal/profiles"
	"fitness-backend/internal/queue"
	"fitness-backend/internal/quota"
	"fitness-backend/internal/routines"
	"fitness-backend/internal/shared/metrics"
	"fitness-backend/internal/shared/telemetry"
)

const routineNamePrefix = "AI Routine - "

// Service orchestrates the recommendation pipeline: features → risk →
// difficulty → classifier → overrides → selection → persistence. Every stage
// before persistence is a pure function of its inputs.
type Service struct {
	Repo         Repo
	Profiles     *profiles.Service
	Classifier   classifier.Client
	Catalog      Catalog
	Routines     *routines.Service
	Quota        *quota.Service
	Queue        queue.Client
	Keywords     KeywordTable
	ModelVersion string
}

// Recommend runs the full pipeline for one user. Classifier failures are
// terminal: they are not retried and surface with the underlying message.
func (s *Service) Recommend(ctx context.Context, userID, requestID string, ov Overrides) (Result, error) {
	if userID == "" {
		return Result{}, errors.New("userID is required")
	}

	metrics.IncRecommendationStarted()
	startedAt := time.Now()

	if s.Quota != nil {
		ok, _, err := s.Quota.CanConsume(ctx, userID, 1)
		if err != nil {
			metrics.IncRecommendationFailed()
			return Result{}, err
		}
		if !ok {
			metrics.IncRecommendationFailed()
			return Result{}, quota.ErrLimitReached
		}
	}

	snap, err := s.Profiles.Snapshot(ctx, userID)
	if err != nil {
		metrics.IncRecommendationFailed()
		return Result{}, fmt.Errorf("load profile snapshot: %w", err)
	}

	features := BuildFeatures(snap, ov, time.Now().UTC())
	flags := s.keywords().Assess(features)
	_, bucket := ScoreDifficulty(features)
	features, bucket = ClampForRisk(features, flags, bucket)
	features.ExperienceLevel = string(bucket)

	preds, err := s.Classifier.Predict(ctx, features)
	if err != nil {
		metrics.IncRecommendationFailed()
		telemetry.Error("recommendation.classifier_failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return Result{}, fmt.Errorf("classifier predict: %w", err)
	}

	outcome := OutcomeFromPredictions(preds)
	outcome = ApplyOverrides(outcome, flags, features.DurationMin)
	if outcome.RuleApplied != "" {
		metrics.IncRecommendationOverridden()
	}

	selector := &Selector{Catalog: s.Catalog}
	selected, err := selector.Select(ctx, outcome.PrimaryLabel, bucket)
	if err != nil {
		metrics.IncRecommendationFailed()
		return Result{}, fmt.Errorf("select exercises: %w", err)
	}

	routineName := routineNamePrefix + outcome.PrimaryLabel
	slots := make([]routines.RoutineExercise, 0, len(selected))
	for _, ref := range selected {
		slots = append(slots, routines.RoutineExercise{ExerciseID: ref.ExerciseID, Name: ref.Name})
	}
	routine, created, err := s.Routines.GetOrCreateByName(ctx, userID, routineName,
		fmt.Sprintf("Personalized routine generated for %s", outcome.PrimaryLabel),
		string(bucket), slots)
	if err != nil {
		metrics.IncRecommendationFailed()
		return Result{}, fmt.Errorf("get or create routine: %w", err)
	}

	rec := Recommendation{
		ID:           uuid.NewString(),
		UserID:       userID,
		RoutineID:    routine.ID,
		PrimaryLabel: outcome.PrimaryLabel,
		Difficulty:   string(bucket),
		Confidence:   outcome.Confidence,
		Top3:         outcome.Top3,
		Exercises:    selected,
		Features:     features,
		ModelVersion: s.ModelVersion,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncRecommendationFailed()
		return Result{}, fmt.Errorf("record recommendation: %w", err)
	}

	if s.Quota != nil {
		if _, err := s.Quota.Consume(ctx, userID, 1); err != nil && !errors.Is(err, quota.ErrLimitReached) {
			telemetry.Warn("recommendation.quota_consume_failed", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}

	if s.Queue != nil {
		msg := queue.Message{
			RecommendationID: rec.ID,
			UserID:           userID,
			RoutineName:      routineName,
			RequestID:        requestID,
			EnqueuedAt:       time.Now().UTC().Format(time.RFC3339),
			Version:          1,
		}
		if err := s.Queue.Send(ctx, msg); err != nil {
			telemetry.Warn("recommendation.publish_failed", map[string]any{
				"recommendationId": rec.ID,
				"error":            err.Error(),
			})
		}
	}

	metrics.IncRecommendationCompleted()
	metrics.ObserveRecommendationDurationMs(float64(time.Since(startedAt).Milliseconds()))
	telemetry.Info("recommendation.completed", map[string]any{
		"userId":           userID,
		"recommendationId": rec.ID,
		"routineId":        routine.ID,
		"primaryLabel":     rec.PrimaryLabel,
		"difficulty":       rec.Difficulty,
		"ruleApplied":      outcome.RuleApplied,
		"newRoutine":       created,
	})

	return Result{Recommendation: rec, RoutineCreated: created}, nil
}

// List returns the user's recommendation history, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Recommendation, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one recommendation.
func (s *Service) Get(ctx context.Context, userID, recommendationID string) (Recommendation, error) {
	if userID == "" || recommendationID == "" {
		return Recommendation{}, errors.New("userID and recommendationID are required")
	}
	return s.Repo.GetByID(ctx, userID, recommendationID)
}

// UpdateStatus moves a pending recommendation to accepted or rejected.
func (s *Service) UpdateStatus(ctx context.Context, userID, recommendationID string, status Status) error {
	if status != StatusAccepted && status != StatusRejected {
		return ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, userID, recommendationID, status)
}

func (s *Service) keywords() KeywordTable {
	if len(s.Keywords.Disease) == 0 && len(s.Keywords.Injury) == 0 {
		return DefaultKeywords()
	}
	return s.Keywords
}
