package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitness-backend/internal/classifier"
	"fitness-backend/internal/exercises"
	"fitness-backend/internal/profiles"
	"fitness-backend/internal/quota"
	"fitness-backend/internal/routines"
)

type stubClassifier struct {
	preds    []classifier.Prediction
	err      error
	calls    int
	features FeatureRecord
}

func (s *stubClassifier) Predict(ctx context.Context, rec FeatureRecord) ([]classifier.Prediction, error) {
	s.calls++
	s.features = rec
	if s.err != nil {
		return nil, s.err
	}
	return s.preds, nil
}

func newTestService(t *testing.T, stub *stubClassifier, catalog *exercises.MemoryRepo) (*Service, *profiles.MemoryRepo) {
	t.Helper()
	profileRepo := profiles.NewMemoryRepo()
	return &Service{
		Repo:         NewMemoryRepo(),
		Profiles:     &profiles.Service{Repo: profileRepo},
		Classifier:   stub,
		Catalog:      catalog,
		Routines:     &routines.Service{Repo: routines.NewMemoryRepo()},
		Quota:        quota.NewService(),
		Keywords:     DefaultKeywords(),
		ModelVersion: "routine-recommender:v13",
	}, profileRepo
}

func TestRecommendRiskScenarioForcesRehabilitation(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{preds: []classifier.Prediction{
		{Label: "Strength Training", Probability: 0.7},
		{Label: "Cardio", Probability: 0.2},
		{Label: "Yoga", Probability: 0.1},
	}}
	svc, profileRepo := newTestService(t, stub, seededCatalog(t, 20, 12))

	// BMI 31: 89.59 kg at the default 170 cm.
	weight := 89.59
	height := 170.0
	if err := profileRepo.UpsertHealth(ctx, profiles.HealthRecord{UserID: "user-1", CurrentInjuries: "chronic knee pain"}); err != nil {
		t.Fatalf("UpsertHealth: %v", err)
	}
	if err := profileRepo.AddProgress(ctx, profiles.ProgressRecord{ID: "p-1", UserID: "user-1", HeightCm: &height, WeightKg: &weight}); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	duration := 90.0
	result, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{DurationMin: &duration})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	rec := result.Recommendation
	if rec.PrimaryLabel != "Rehabilitation" || rec.Confidence != 85.0 {
		t.Errorf("expected Rehabilitation@85, got %q@%v", rec.PrimaryLabel, rec.Confidence)
	}
	wantTop3 := []LabelScore{
		{Label: "Rehabilitation", Confidence: 85.0},
		{Label: "Pilates", Confidence: 10.0},
		{Label: "Yoga", Confidence: 5.0},
	}
	for i := range wantTop3 {
		if rec.Top3[i] != wantTop3[i] {
			t.Errorf("top3[%d]: expected %+v, got %+v", i, wantTop3[i], rec.Top3[i])
		}
	}
	if rec.Difficulty != string(BucketBeginner) {
		t.Errorf("expected Beginner bucket, got %q", rec.Difficulty)
	}

	// The classifier must have seen the clamped feature vector.
	if stub.features.DurationMin > 45 {
		t.Errorf("classifier saw unclamped duration %v", stub.features.DurationMin)
	}
	if stub.features.ExperienceLevel != string(BucketBeginner) {
		t.Errorf("classifier saw experience %q", stub.features.ExperienceLevel)
	}
	if stub.features.BMI < 30.9 || stub.features.BMI > 31.1 {
		t.Errorf("expected BMI ≈ 31, got %v", stub.features.BMI)
	}

	// Selection restricted to the Beginner-tagged Rehabilitation entries.
	if len(rec.Exercises) != 8 {
		t.Fatalf("expected 8 exercises, got %d", len(rec.Exercises))
	}
	for _, ref := range rec.Exercises {
		if !strings.HasPrefix(ref.ExerciseID, "rehab-") {
			t.Errorf("unexpected non-rehab exercise %q", ref.ExerciseID)
		}
	}

	if rec.Status != StatusPending {
		t.Errorf("expected pending status, got %q", rec.Status)
	}
	if !result.RoutineCreated {
		t.Errorf("first run must create the routine")
	}
}

func TestRecommendReusesRoutineOnSecondRun(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{preds: []classifier.Prediction{
		{Label: "Cardio", Probability: 0.6},
		{Label: "Yoga", Probability: 0.3},
		{Label: "Pilates", Probability: 0.1},
	}}
	svc, _ := newTestService(t, stub, seededCatalog(t, 20, 4))

	first, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{})
	if err != nil {
		t.Fatalf("first Recommend: %v", err)
	}
	second, err := svc.Recommend(ctx, "user-1", "req-2", Overrides{})
	if err != nil {
		t.Fatalf("second Recommend: %v", err)
	}

	if !first.RoutineCreated {
		t.Errorf("first run must create the routine")
	}
	if second.RoutineCreated {
		t.Errorf("second run must reuse the routine")
	}
	if first.Recommendation.RoutineID != second.Recommendation.RoutineID {
		t.Errorf("both runs must resolve the same routine: %q vs %q",
			first.Recommendation.RoutineID, second.Recommendation.RoutineID)
	}

	history, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("each run must persist its own audit row, got %d", len(history))
	}
}

func TestRecommendLongStrengthScenario(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{preds: []classifier.Prediction{
		{Label: "Strength Circuit", Probability: 0.8},
		{Label: "Cardio", Probability: 0.15},
		{Label: "Yoga", Probability: 0.05},
	}}
	svc, _ := newTestService(t, stub, seededCatalog(t, 20, 4))

	duration := 130.0
	experience := "Advanced"
	goal := "strength"
	result, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{
		DurationMin:     &duration,
		ExperienceLevel: &experience,
		Goal:            &goal,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	rec := result.Recommendation
	if rec.PrimaryLabel != "Full Body Workout" {
		t.Errorf("expected Full Body Workout, got %q", rec.PrimaryLabel)
	}
	if rec.Confidence != 72.0 {
		t.Errorf("expected confidence 72.0, got %v", rec.Confidence)
	}
	if rec.Top3[0].Label != "Strength Circuit" || rec.Top3[0].Confidence != 80.0 {
		t.Errorf("top3 must stay as the classifier produced it, got %+v", rec.Top3[0])
	}
	if rec.Difficulty != string(BucketAdvanced) {
		t.Errorf("expected Advanced bucket, got %q", rec.Difficulty)
	}
	if rec.RoutineID == "" {
		t.Errorf("routine must be recorded on the audit row")
	}
}

func TestRecommendClassifierFailureIsTerminal(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{err: errors.New("model not loaded")}
	svc, _ := newTestService(t, stub, seededCatalog(t, 20, 4))

	_, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{})
	if err == nil {
		t.Fatalf("expected terminal error")
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Errorf("underlying message must be surfaced, got %q", err.Error())
	}
	if stub.calls != 1 {
		t.Errorf("classifier must not be retried, got %d calls", stub.calls)
	}

	history, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("failed run must not persist an audit row, got %d", len(history))
	}

	q, err := svc.Quota.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("quota Get: %v", err)
	}
	if q.Used != 0 {
		t.Errorf("failed run must not consume quota, got used=%d", q.Used)
	}
}

func TestRecommendEnforcesQuota(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{preds: []classifier.Prediction{
		{Label: "Cardio", Probability: 0.6},
		{Label: "Yoga", Probability: 0.3},
		{Label: "Pilates", Probability: 0.1},
	}}
	svc, _ := newTestService(t, stub, seededCatalog(t, 20, 4))

	if _, err := svc.Quota.Consume(ctx, "user-1", 20); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	_, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{})
	if !errors.Is(err, quota.ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("classifier must not run when quota is exhausted")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	stub := &stubClassifier{preds: []classifier.Prediction{
		{Label: "Cardio", Probability: 0.6},
		{Label: "Yoga", Probability: 0.3},
		{Label: "Pilates", Probability: 0.1},
	}}
	svc, _ := newTestService(t, stub, seededCatalog(t, 20, 4))

	result, err := svc.Recommend(ctx, "user-1", "req-1", Overrides{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	id := result.Recommendation.ID

	if err := svc.UpdateStatus(ctx, "user-1", id, StatusAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := svc.UpdateStatus(ctx, "user-1", id, StatusRejected); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("accepted row must not transition again, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, "user-1", id, Status("archived")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, "user-2", id, StatusAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user must get ErrNotFound, got %v", err)
	}
}
