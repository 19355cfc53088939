package exercises

import "context"

// SeedDefaults loads a starter catalog. Postgres deployments get the same set
// from the seed migration; this covers in-memory setups.
func SeedDefaults(ctx context.Context, repo Repo) error {
	defaults := []Exercise{
		{ID: "ex-squat", Name: "Bodyweight Squat", Description: "Squat to parallel keeping heels planted.", Category: "Strength", Muscle: "Quadriceps", Difficulty: "Beginner", Active: true},
		{ID: "ex-pushup", Name: "Push Up", Description: "Standard push up with a neutral spine.", Category: "Strength", Muscle: "Chest", Difficulty: "Beginner", Active: true},
		{ID: "ex-deadlift", Name: "Barbell Deadlift", Description: "Hip hinge pulling the bar along the shins.", Category: "Strength", Muscle: "Hamstrings", Difficulty: "Advanced", Active: true},
		{ID: "ex-bench", Name: "Bench Press", Description: "Barbell press from the chest, full lockout.", Category: "Strength", Muscle: "Chest", Difficulty: "Intermediate", Active: true},
		{ID: "ex-row", Name: "Bent Over Row", Description: "Row the bar to the lower ribs, flat back.", Category: "Strength", Muscle: "Back", Difficulty: "Intermediate", Active: true},
		{ID: "ex-lunge", Name: "Walking Lunge", Description: "Alternating lunges, knee tracking over the toes.", Category: "Full Body Workout", Muscle: "Legs", Difficulty: "Beginner", Active: true},
		{ID: "ex-burpee", Name: "Burpee", Description: "Squat thrust into a jump, continuous pace.", Category: "Full Body Workout", Muscle: "Full Body", Difficulty: "Intermediate", Active: true},
		{ID: "ex-kbswing", Name: "Kettlebell Swing", Description: "Hip drive swing to shoulder height.", Category: "Full Body Workout", Muscle: "Posterior Chain", Difficulty: "Intermediate", Active: true},
		{ID: "ex-run-intervals", Name: "Interval Run", Description: "Alternate 1 minute fast with 2 minutes easy.", Category: "Cardio", Muscle: "Legs", Difficulty: "Intermediate", Active: true},
		{ID: "ex-jump-rope", Name: "Jump Rope", Description: "Steady skipping, soft knees.", Category: "Cardio", Muscle: "Calves", Difficulty: "Beginner", Active: true},
		{ID: "ex-cycling", Name: "Stationary Cycling", Description: "Moderate cadence ride.", Category: "Cardio", Muscle: "Legs", Difficulty: "Beginner", Active: true},
		{ID: "ex-rowerg", Name: "Rowing Machine", Description: "Drive with the legs, finish with the arms.", Category: "Cardio", Muscle: "Full Body", Difficulty: "Intermediate", Active: true},
		{ID: "ex-sun-salutation", Name: "Sun Salutation", Description: "Flowing sequence synchronized with the breath.", Category: "Yoga", Muscle: "Full Body", Difficulty: "Beginner", Active: true},
		{ID: "ex-warrior", Name: "Warrior II", Description: "Static hold, front knee over the ankle.", Category: "Yoga", Muscle: "Legs", Difficulty: "Beginner", Active: true},
		{ID: "ex-downward-dog", Name: "Downward Dog", Description: "Inverted V hold, long spine.", Category: "Yoga", Muscle: "Shoulders", Difficulty: "Beginner", Active: true},
		{ID: "ex-hundred", Name: "The Hundred", Description: "Pilates breathing drill with legs in tabletop.", Category: "Pilates", Muscle: "Core", Difficulty: "Beginner", Active: true},
		{ID: "ex-roll-up", Name: "Roll Up", Description: "Slow articulated roll from lying to seated.", Category: "Pilates", Muscle: "Core", Difficulty: "Intermediate", Active: true},
		{ID: "ex-bird-dog", Name: "Bird Dog", Description: "Opposite arm and leg reach from all fours.", Category: "Rehabilitation", Muscle: "Lower Back", Difficulty: "Beginner", Active: true},
		{ID: "ex-glute-bridge", Name: "Glute Bridge", Description: "Hip lift with a pause at the top.", Category: "Rehabilitation", Muscle: "Glutes", Difficulty: "Beginner", Active: true},
		{ID: "ex-band-pull", Name: "Band Pull Apart", Description: "Light band pull keeping the shoulders down.", Category: "Rehabilitation", Muscle: "Shoulders", Difficulty: "Beginner", Active: true},
		{ID: "ex-heel-raise", Name: "Heel Raise", Description: "Controlled calf raise off a step.", Category: "Rehabilitation", Muscle: "Calves", Difficulty: "Beginner", Active: true},
		{ID: "ex-dead-bug", Name: "Dead Bug", Description: "Core brace with slow opposite limb lowering.", Category: "Rehabilitation", Muscle: "Core", Difficulty: "Beginner", Active: true},
	}

	for _, e := range defaults {
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
