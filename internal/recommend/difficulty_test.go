package recommend

import "testing"

func TestScoreDifficultyBuckets(t *testing.T) {
	cases := []struct {
		name       string
		experience string
		duration   float64
		goal       string
		wantScore  int
		wantBucket Bucket
	}{
		{"advanced long strength", "Advanced", 110, "strength training", 5, BucketAdvanced},
		{"intermediate hour", "Intermediate", 60, "General health", 1, BucketIntermediate},
		{"beginner short maintain", "Beginner", 20, "Maintain current weight", -2, BucketBeginner},
		{"intermediate default session", "Intermediate", 45, "Maintain current weight", 0, BucketBeginner},
		{"advanced short", "advanced athlete", 25, "lose weight", 0, BucketBeginner},
		{"intermediate long muscle", "Intermediate", 100, "build muscle mass", 4, BucketAdvanced},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, bucket := ScoreDifficulty(FeatureRecord{
				ExperienceLevel: tc.experience,
				DurationMin:     tc.duration,
				Goal:            tc.goal,
			})
			if score != tc.wantScore {
				t.Errorf("score: expected %d, got %d", tc.wantScore, score)
			}
			if bucket != tc.wantBucket {
				t.Errorf("bucket: expected %s, got %s", tc.wantBucket, bucket)
			}
		})
	}
}

func TestScoreDifficultyMonotonicInDuration(t *testing.T) {
	rank := map[Bucket]int{BucketBeginner: 0, BucketIntermediate: 1, BucketAdvanced: 2}
	prev := -1
	for _, duration := range []float64{20, 70, 110} {
		_, bucket := ScoreDifficulty(FeatureRecord{
			ExperienceLevel: "Intermediate",
			DurationMin:     duration,
			Goal:            "strength",
		})
		if rank[bucket] < prev {
			t.Fatalf("bucket decreased at duration %v: %s", duration, bucket)
		}
		prev = rank[bucket]
	}
}

func TestClampForRiskIsAbsolute(t *testing.T) {
	rec := FeatureRecord{
		ExperienceLevel: "Advanced",
		DurationMin:     150,
		CaloriesBurned:  600,
		Goal:            "strength",
	}
	_, bucket := ScoreDifficulty(rec)
	if bucket != BucketAdvanced {
		t.Fatalf("precondition: expected Advanced before clamp, got %s", bucket)
	}

	clamped, bucket := ClampForRisk(rec, RiskFlags{InjuryRisk: true}, bucket)

	if clamped.DurationMin > 45 {
		t.Errorf("duration must be clamped to 45, got %v", clamped.DurationMin)
	}
	if clamped.CaloriesBurned > 250 {
		t.Errorf("calories must be clamped to 250, got %v", clamped.CaloriesBurned)
	}
	if bucket != BucketBeginner {
		t.Errorf("bucket must be forced to Beginner, got %s", bucket)
	}
}

func TestClampForRiskNoopWithoutFlags(t *testing.T) {
	rec := FeatureRecord{DurationMin: 150, CaloriesBurned: 600}

	clamped, bucket := ClampForRisk(rec, RiskFlags{}, BucketAdvanced)

	if clamped.DurationMin != 150 || clamped.CaloriesBurned != 600 {
		t.Errorf("values must be untouched without risk: %v/%v", clamped.DurationMin, clamped.CaloriesBurned)
	}
	if bucket != BucketAdvanced {
		t.Errorf("bucket must be untouched, got %s", bucket)
	}
}
