package recommend

import (
	"fmt"
	"time"

	"fitness-backend/internal/features"
	"fitness-backend/internal/profiles"
)

// FeatureRecord is the classifier input record; the type lives in the
// features package so classifier clients can depend on it without importing
// the engine.
type FeatureRecord = features.Record

// Overrides carries the optional request-supplied values. A nil field means
// "use the stored snapshot, else the domain default".
type Overrides struct {
	Age                   *float64 `json:"age"`
	RestingHeartRate      *float64 `json:"restingHeartRate"`
	DurationMin           *float64 `json:"durationMin"`
	CaloriesBurned        *float64 `json:"caloriesBurned"`
	Smokes                *bool    `json:"smokes"`
	Drinks                *bool    `json:"drinks"`
	CurrentInjuries       *string  `json:"currentInjuries"`
	PreexistingConditions *string  `json:"preexistingConditions"`
	SleepHours            *string  `json:"sleepHours"`
	SleepQuality          *string  `json:"sleepQuality"`
	NightWakeups          *string  `json:"nightWakeups"`
	MainMealType          *string  `json:"mainMealType"`
	DailyCalories         *string  `json:"dailyCalories"`
	ProteinIntake         *string  `json:"proteinIntake"`
	TargetWeight          *string  `json:"targetWeight"`
	TargetBodyFat         *string  `json:"targetBodyFat"`
	Goal                  *string  `json:"goal"`
	ExperienceLevel       *string  `json:"experienceLevel"`
}

// Domain defaults used when neither an override nor a stored snapshot is
// available. Every field resolves; missing data is never an error.
const (
	defaultAge              = 28
	defaultHeightCm         = 170
	defaultWeightKg         = 70
	defaultRestingHeartRate = 75
	defaultDurationMin      = 45
	defaultCaloriesBurned   = 300
	defaultBodyFatPct       = 18
	defaultMuscleMassPct    = 32
	defaultWaistCm          = 85
	defaultHipCm            = 97.5
	defaultInjuries         = "No injuries"
	defaultConditions       = "None"
	defaultSleepHours       = "7 to 8 hours"
	defaultSleepQuality     = "Good"
	defaultNightWakeups     = "1 time"
	defaultMainMealType     = "Balanced"
	defaultDailyCalories    = "2000 - 2500 kcal"
	defaultProteinIntake    = "Moderate"
	defaultTargetWeight     = "Maintain current weight"
	defaultTargetBodyFat    = "Between 10% and 15%"
	defaultGoal             = "Maintain current weight"
	defaultExperience       = "Intermediate"
)

// BuildFeatures assembles the feature record from request overrides, stored
// snapshots and domain defaults, in that priority order. BMI is always
// computed from weight and height, never taken from input.
func BuildFeatures(snap profiles.Snapshot, ov Overrides, now time.Time) FeatureRecord {
	rec := FeatureRecord{}

	rec.Age = defaultAge
	if snap.Health != nil && snap.Health.BirthDate != nil {
		rec.Age = float64(now.Year() - snap.Health.BirthDate.Year())
	}
	if ov.Age != nil {
		rec.Age = *ov.Age
	}

	rec.HeightCm = defaultHeightCm
	if snap.Progress != nil && snap.Progress.HeightCm != nil {
		rec.HeightCm = *snap.Progress.HeightCm
	}
	rec.WeightKg = defaultWeightKg
	if snap.Progress != nil && snap.Progress.WeightKg != nil {
		rec.WeightKg = *snap.Progress.WeightKg
	}
	heightM := rec.HeightCm / 100
	rec.BMI = rec.WeightKg / (heightM * heightM)

	rec.RestingHeartRate = defaultRestingHeartRate
	if snap.Health != nil && snap.Health.RestingHeartRate != nil {
		rec.RestingHeartRate = float64(*snap.Health.RestingHeartRate)
	}
	if ov.RestingHeartRate != nil {
		rec.RestingHeartRate = *ov.RestingHeartRate
	}

	rec.DurationMin = defaultDurationMin
	if ov.DurationMin != nil {
		rec.DurationMin = *ov.DurationMin
	}
	rec.CaloriesBurned = defaultCaloriesBurned
	if ov.CaloriesBurned != nil {
		rec.CaloriesBurned = *ov.CaloriesBurned
	}

	rec.Smokes = "No"
	if snap.Health != nil && snap.Health.Smokes {
		rec.Smokes = "Yes"
	}
	if ov.Smokes != nil {
		rec.Smokes = yesNo(*ov.Smokes)
	}
	rec.Drinks = "No"
	if snap.Health != nil && snap.Health.Drinks {
		rec.Drinks = "Yes"
	}
	if ov.Drinks != nil {
		rec.Drinks = yesNo(*ov.Drinks)
	}

	rec.CurrentInjuries = defaultInjuries
	if snap.Health != nil && snap.Health.CurrentInjuries != "" {
		rec.CurrentInjuries = snap.Health.CurrentInjuries
	}
	if ov.CurrentInjuries != nil && *ov.CurrentInjuries != "" {
		rec.CurrentInjuries = *ov.CurrentInjuries
	}
	rec.PreexistingConditions = defaultConditions
	if snap.Health != nil && snap.Health.PreexistingConditions != "" {
		rec.PreexistingConditions = snap.Health.PreexistingConditions
	}
	if ov.PreexistingConditions != nil && *ov.PreexistingConditions != "" {
		rec.PreexistingConditions = *ov.PreexistingConditions
	}

	rec.SleepHours = stringChain(ov.SleepHours, sleepField(snap, func(s profiles.SleepRecord) string { return s.Hours }), defaultSleepHours)
	rec.SleepQuality = stringChain(ov.SleepQuality, sleepField(snap, func(s profiles.SleepRecord) string { return s.Quality }), defaultSleepQuality)
	rec.NightWakeups = stringChain(ov.NightWakeups, sleepField(snap, func(s profiles.SleepRecord) string { return s.NightWakeups }), defaultNightWakeups)

	stored := ""
	if snap.Nutrition != nil {
		stored = snap.Nutrition.MainMealType
	}
	rec.MainMealType = stringChain(ov.MainMealType, stored, defaultMainMealType)

	stored = ""
	if snap.Nutrition != nil && snap.Nutrition.DailyCalories != nil {
		stored = fmt.Sprintf("%d kcal", int(*snap.Nutrition.DailyCalories))
	}
	rec.DailyCalories = stringChain(ov.DailyCalories, stored, defaultDailyCalories)

	rec.ProteinIntake = proteinIntake(snap)
	if ov.ProteinIntake != nil && *ov.ProteinIntake != "" {
		rec.ProteinIntake = *ov.ProteinIntake
	}

	rec.TargetWeight = stringChain(ov.TargetWeight, "", defaultTargetWeight)
	rec.TargetBodyFat = stringChain(ov.TargetBodyFat, "", defaultTargetBodyFat)

	stored = ""
	if snap.Goal != nil {
		stored = snap.Goal.Goal
	}
	rec.Goal = stringChain(ov.Goal, stored, defaultGoal)

	stored = ""
	if snap.Goal != nil {
		stored = snap.Goal.ExperienceLevel
	}
	rec.ExperienceLevel = stringChain(ov.ExperienceLevel, stored, defaultExperience)

	rec.BodyFatPct = defaultBodyFatPct
	rec.MuscleMassPct = defaultMuscleMassPct
	rec.WaistCm = defaultWaistCm
	rec.HipCm = defaultHipCm
	if snap.Measurement != nil {
		if snap.Measurement.BodyFatPct != nil {
			rec.BodyFatPct = *snap.Measurement.BodyFatPct
		}
		if snap.Measurement.MuscleMassPct != nil {
			rec.MuscleMassPct = *snap.Measurement.MuscleMassPct
		}
		if snap.Measurement.WaistCm != nil {
			rec.WaistCm = *snap.Measurement.WaistCm
		}
		if snap.Measurement.HipCm != nil {
			rec.HipCm = *snap.Measurement.HipCm
		}
	}

	return rec
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func stringChain(override *string, stored, fallback string) string {
	if override != nil && *override != "" {
		return *override
	}
	if stored != "" {
		return stored
	}
	return fallback
}

func sleepField(snap profiles.Snapshot, pick func(profiles.SleepRecord) string) string {
	if snap.Sleep == nil {
		return ""
	}
	return pick(*snap.Sleep)
}

func proteinIntake(snap profiles.Snapshot) string {
	if snap.Nutrition == nil || snap.Nutrition.ProteinGrams == nil {
		return defaultProteinIntake
	}
	if *snap.Nutrition.ProteinGrams >= 100 {
		return "High"
	}
	return "Low"
}
