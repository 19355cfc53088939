package profiles

import "time"

// HealthRecord holds the user's medical baseline. One row per user.
type HealthRecord struct {
	UserID                string     `json:"userId"`
	BirthDate             *time.Time `json:"birthDate,omitempty"`
	RestingHeartRate      *int       `json:"restingHeartRate,omitempty"`
	PreexistingConditions string     `json:"preexistingConditions,omitempty"`
	CurrentInjuries       string     `json:"currentInjuries,omitempty"`
	Smokes                bool       `json:"smokes"`
	Drinks                bool       `json:"drinks"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// GoalRecord holds the user's training goal. One row per user.
type GoalRecord struct {
	UserID          string    `json:"userId"`
	Goal            string    `json:"goal"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProgressRecord is a point-in-time body measurement. Append-only series.
type ProgressRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	HeightCm   *float64   `json:"heightCm,omitempty"`
	WeightKg   *float64   `json:"weightKg,omitempty"`
	RecordedAt time.Time  `json:"recordedAt"`
}

// SleepRecord is a self-reported sleep survey entry. Append-only series.
type SleepRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Hours        string    `json:"hours,omitempty"`
	Quality      string    `json:"quality,omitempty"`
	NightWakeups string    `json:"nightWakeups,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// NutritionRecord is a self-reported nutrition survey entry. Append-only series.
type NutritionRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MainMealType  string    `json:"mainMealType,omitempty"`
	DailyCalories *float64  `json:"dailyCalories,omitempty"`
	ProteinGrams  *float64  `json:"proteinGrams,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// MeasurementRecord is a body composition entry. Append-only series.
type MeasurementRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	BodyFatPct    *float64  `json:"bodyFatPct,omitempty"`
	MuscleMassPct *float64  `json:"muscleMassPct,omitempty"`
	WaistCm       *float64  `json:"waistCm,omitempty"`
	HipCm         *float64  `json:"hipCm,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// Snapshot aggregates the latest record of every profile series for one user.
// A nil field means the user never recorded that series.
type Snapshot struct {
	Health      *HealthRecord      `json:"health,omitempty"`
	Goal        *GoalRecord        `json:"goal,omitempty"`
	Progress    *ProgressRecord    `json:"progress,omitempty"`
	Sleep       *SleepRecord       `json:"sleep,omitempty"`
	Nutrition   *NutritionRecord   `json:"nutrition,omitempty"`
	Measurement *MeasurementRecord `json:"measurement,omitempty"`
}

// Completeness reports which profile basics are still missing before a
// recommendation is fully personalized.
type Completeness struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}
