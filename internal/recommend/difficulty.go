package recommend

import "strings"

// Bucket is the engine's skill-level classification. It is derived from the
// weighted score, never assigned by the classifier.
type Bucket string

const (
	BucketBeginner     Bucket = "Beginner"
	BucketIntermediate Bucket = "Intermediate"
	BucketAdvanced     Bucket = "Advanced"
)

// Safety ceilings applied when any risk flag is raised.
const (
	maxSafeDurationMin = 45
	maxSafeCalories    = 250
)

// Goal keyword stems, kept as data tables like the risk keywords.
var (
	goalIntenseKeywords = []string{"strength", "muscle", "intense", "performance"}
	goalEasyKeywords    = []string{"maintain", "health", "lose"}
)

// ScoreDifficulty computes the weighted difficulty score from the record's
// experience text, session duration and goal text, and maps it to a bucket.
func ScoreDifficulty(rec FeatureRecord) (int, Bucket) {
	score := 0

	experience := strings.ToLower(rec.ExperienceLevel)
	switch {
	case strings.Contains(experience, "advanced"):
		score += 2
	case strings.Contains(experience, "intermediate"):
		score++
	}

	switch {
	case rec.DurationMin >= 100:
		score += 2
	case rec.DurationMin >= 60:
		score++
	case rec.DurationMin < 30:
		score--
	}

	if containsAny(rec.Goal, goalIntenseKeywords) {
		score++
	} else if containsAny(rec.Goal, goalEasyKeywords) {
		score--
	}

	return score, bucketForScore(score)
}

func bucketForScore(score int) Bucket {
	switch {
	case score >= 3:
		return BucketAdvanced
	case score >= 1:
		return BucketIntermediate
	default:
		return BucketBeginner
	}
}

// ClampForRisk applies the unconditional safety override: with any risk flag
// raised, duration and calories are clamped to safe ceilings and the bucket
// is forced to Beginner. It runs before the classifier call because the
// clamped values are part of the feature vector the classifier sees.
func ClampForRisk(rec FeatureRecord, flags RiskFlags, bucket Bucket) (FeatureRecord, Bucket) {
	if !flags.Any() {
		return rec, bucket
	}
	if rec.DurationMin > maxSafeDurationMin {
		rec.DurationMin = maxSafeDurationMin
	}
	if rec.CaloriesBurned > maxSafeCalories {
		rec.CaloriesBurned = maxSafeCalories
	}
	return rec, BucketBeginner
}
